package container

import (
	"io"
	"net"

	grpcprometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/shahchayan9/gRPC-Communication/common"
)

// Container wraps the bring-up and tear-down of one gRPC server, with
// prometheus interceptors and the standard health service registered.
type Container struct {
	io.Closer
	server *grpc.Server
	health *health.Server
	port   int
	log    zerolog.Logger
}

func Start(name, bindAddress string, registerFunc func(grpc.ServiceRegistrar)) (*Container, error) {
	c := &Container{
		server: grpc.NewServer(
			grpc.ChainStreamInterceptor(grpcprometheus.StreamServerInterceptor),
			grpc.ChainUnaryInterceptor(grpcprometheus.UnaryServerInterceptor),
		),
		health: health.NewServer(),
	}
	registerFunc(c.server)
	healthpb.RegisterHealthServer(c.server, c.health)
	grpcprometheus.Register(c.server)

	listener, err := net.Listen("tcp", bindAddress)
	if err != nil {
		return nil, err
	}

	c.port = listener.Addr().(*net.TCPAddr).Port

	c.log = log.With().
		Str("container", name).
		Str("bindAddress", listener.Addr().String()).
		Logger()

	go common.DoWithLabels(map[string]string{
		"process": name,
		"bind":    listener.Addr().String(),
	}, func() {
		if err := c.server.Serve(listener); err != nil {
			c.log.Fatal().Err(err).Msg("Failed to start serving")
		}
	})

	c.log.Info().Msg("Started container")

	return c, nil
}

func (c *Container) Port() int {
	return c.port
}

func (c *Container) Close() error {
	c.health.Shutdown()
	c.server.GracefulStop()
	c.log.Info().Msg("Stopped container")
	return nil
}
