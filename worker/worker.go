// Package worker implements a borough shard owner: one process that loads
// its shard file at startup and serves timed predicate scans over gRPC.
package worker

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
	"google.golang.org/grpc"

	"github.com/shahchayan9/gRPC-Communication/common/container"
	"github.com/shahchayan9/gRPC-Communication/common/metrics"
	"github.com/shahchayan9/gRPC-Communication/proto"
	"github.com/shahchayan9/gRPC-Communication/store"
)

type Config struct {
	ProcessID   string
	Borough     string
	DataFile    string
	ServiceAddr string
	MetricsAddr string
}

type Worker struct {
	config  Config
	shard   *store.Shard
	rpc     *container.Container
	metrics *metrics.PrometheusMetrics
	log     zerolog.Logger
}

// New loads the shard and starts serving. A malformed shard file is fatal:
// the process must not come up half-loaded.
func New(config Config) (*Worker, error) {
	w := &Worker{
		config: config,
		log: log.With().
			Str("component", "worker").
			Str("process", config.ProcessID).
			Logger(),
	}

	borough, ok := store.ParseBorough(config.Borough)
	if !ok && config.Borough != "" {
		w.log.Warn().
			Str("borough", config.Borough).
			Msg("Unrecognized borough, worker will own the overflow shard")
	}

	shard, err := store.Load(config.DataFile, borough)
	if err != nil {
		return nil, err
	}
	w.shard = shard

	service := newDataService(config.ProcessID, shard)
	w.rpc, err = container.Start("worker-"+config.ProcessID, config.ServiceAddr,
		func(registrar grpc.ServiceRegistrar) {
			proto.RegisterDataServiceServer(registrar, service)
		})
	if err != nil {
		return nil, err
	}

	if config.MetricsAddr != "" {
		w.metrics, err = metrics.Start(config.MetricsAddr)
		if err != nil {
			_ = w.rpc.Close()
			return nil, err
		}
	}

	w.log.Info().
		Str("borough", string(borough)).
		Int("records", shard.Size()).
		Msg("Worker started")

	return w, nil
}

// Port returns the bound RPC port, for tests that listen on port 0.
func (w *Worker) Port() int {
	return w.rpc.Port()
}

func (w *Worker) Close() error {
	err := w.rpc.Close()
	if w.metrics != nil {
		err = multierr.Append(err, w.metrics.Close())
	}
	return err
}
