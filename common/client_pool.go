package common

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/shahchayan9/gRPC-Communication/proto"
)

// ClientPool caches one gRPC connection per target process. Transport
// security is out of scope here, connections are always insecure.
type ClientPool interface {
	io.Closer
	GetDataService(target string) (proto.DataServiceClient, error)
}

type clientPool struct {
	sync.Mutex
	connections sync.Map

	log zerolog.Logger
}

func NewClientPool() ClientPool {
	return &clientPool{
		log: log.With().
			Str("component", "client-pool").
			Logger(),
	}
}

func (cp *clientPool) Close() error {
	cp.connections.Range(func(key interface{}, value interface{}) bool {
		err := value.(*grpc.ClientConn).Close()
		if err != nil {
			cp.log.Warn().
				Str("server_address", key.(string)).
				Err(err).
				Msg("Failed to close GRPC connection")
			return false
		}
		return true
	})

	return nil
}

func (cp *clientPool) GetDataService(target string) (proto.DataServiceClient, error) {
	cnx, err := cp.getConnection(target)
	if err != nil {
		return nil, err
	}
	return proto.NewDataServiceClient(cnx), nil
}

func (cp *clientPool) getConnection(target string) (grpc.ClientConnInterface, error) {
	cnx, ok := cp.connections.Load(target)
	if ok {
		return cnx.(grpc.ClientConnInterface), nil
	}

	cp.Lock()
	defer cp.Unlock()

	cnx, ok = cp.connections.Load(target)
	if ok {
		return cnx.(grpc.ClientConnInterface), nil
	}

	cp.log.Info().
		Str("server_address", target).
		Msg("Creating new GRPC connection")

	cnx, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	cp.connections.Store(target, cnx)
	return cnx.(grpc.ClientConnInterface), nil
}
