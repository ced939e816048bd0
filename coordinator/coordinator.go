// Package coordinator implements the query front door: it owns the borough
// to worker routing table, fans queries out to the shard owners, and merges
// their results into one deterministic response.
package coordinator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shahchayan9/gRPC-Communication/cluster"
	"github.com/shahchayan9/gRPC-Communication/common"
	"github.com/shahchayan9/gRPC-Communication/common/container"
	"github.com/shahchayan9/gRPC-Communication/common/metrics"
	"github.com/shahchayan9/gRPC-Communication/proto"
	"github.com/shahchayan9/gRPC-Communication/query"
	"github.com/shahchayan9/gRPC-Communication/store"
	"github.com/shahchayan9/gRPC-Communication/timing"
)

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultCacheTTL       = 10 * time.Second
	DefaultStreamPageSize = 64
)

type Config struct {
	ProcessID   string
	ServiceAddr string
	MetricsAddr string
	Cluster     cluster.Config

	// RequestTimeout bounds each individual worker dispatch.
	RequestTimeout time.Duration
	// CacheTTL bounds how long a merged response may be served from cache.
	// Zero disables caching.
	CacheTTL       time.Duration
	StreamPageSize int
}

type Coordinator struct {
	proto.UnimplementedDataServiceServer

	config  Config
	workers []cluster.Process
	routes  map[store.Borough]cluster.Process

	pool    common.ClientPool
	cache   *queryCache
	rpc     *container.Container
	metrics *metrics.PrometheusMetrics
	log     zerolog.Logger
}

func New(config Config) (*Coordinator, error) {
	if err := config.Cluster.Validate(); err != nil {
		return nil, err
	}
	if config.RequestTimeout == 0 {
		config.RequestTimeout = DefaultRequestTimeout
	}
	if config.StreamPageSize == 0 {
		config.StreamPageSize = DefaultStreamPageSize
	}

	c := &Coordinator{
		config:  config,
		workers: config.Cluster.SortedWorkers(),
		routes:  config.Cluster.Routes(),
		pool:    common.NewClientPool(),
		log: log.With().
			Str("component", "coordinator").
			Str("process", config.ProcessID).
			Logger(),
	}

	var err error
	if config.CacheTTL > 0 {
		if c.cache, err = newQueryCache(config.CacheTTL); err != nil {
			return nil, err
		}
	}

	c.rpc, err = container.Start("coordinator", config.ServiceAddr,
		func(registrar grpc.ServiceRegistrar) {
			proto.RegisterDataServiceServer(registrar, c)
		})
	if err != nil {
		return nil, err
	}

	if config.MetricsAddr != "" {
		if c.metrics, err = metrics.Start(config.MetricsAddr); err != nil {
			_ = c.rpc.Close()
			return nil, err
		}
	}

	c.log.Info().
		Int("workers", len(c.workers)).
		Msg("Coordinator started")

	return c, nil
}

// Port returns the bound RPC port, for tests that listen on port 0.
func (c *Coordinator) Port() int {
	return c.rpc.Port()
}

func (c *Coordinator) Close() error {
	err := c.rpc.Close()
	if c.metrics != nil {
		err = multierr.Append(err, c.metrics.Close())
	}
	if c.cache != nil {
		c.cache.close()
	}
	return multierr.Append(err, c.pool.Close())
}

func (c *Coordinator) QueryData(ctx context.Context, request *proto.QueryRequest) (*proto.QueryResponse, error) {
	return c.query(ctx, request), nil
}

func (c *Coordinator) StreamData(request *proto.QueryRequest, stream proto.DataService_StreamDataServer) error {
	response := c.query(stream.Context(), request)

	chunks, err := common.BuildChunks(response, c.config.StreamPageSize)
	if err != nil {
		return status.Errorf(codes.Internal, "failed to encode chunks: %s", err)
	}

	for _, chunk := range chunks {
		if err := stream.Send(chunk); err != nil {
			return err
		}
	}
	return nil
}

// SendData delivers a point-to-point payload: messages addressed to the
// coordinator are accepted directly, anything else is forwarded to the
// destination worker. No shard or predicate machinery is involved.
func (c *Coordinator) SendData(ctx context.Context, message *proto.DataMessage) (*proto.Empty, error) {
	if message.Destination == c.config.ProcessID {
		c.log.Info().
			Str("message_id", message.MessageId).
			Str("source", message.Source).
			Int("bytes", len(message.Data)).
			Msg("Accepted data message")
		return &proto.Empty{}, nil
	}

	for _, worker := range c.workers {
		if worker.ID != message.Destination {
			continue
		}

		client, err := c.pool.GetDataService(worker.Address)
		if err != nil {
			return nil, status.Errorf(codes.Unavailable, "no connection to %s: %s", worker.ID, err)
		}

		ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
		defer cancel()
		return client.SendData(ctx, message)
	}

	return nil, status.Errorf(codes.NotFound, "unknown destination %q", message.Destination)
}

type dispatch struct {
	worker   cluster.Process
	response *proto.QueryResponse
	err      error
	elapsed  time.Duration
}

// query validates, resolves, dispatches and merges. All failures resolve to
// success=false responses; the caller never sees an RPC error for a bad or
// partially served query.
func (c *Coordinator) query(ctx context.Context, request *proto.QueryRequest) *proto.QueryResponse {
	start := time.Now()

	// Reject malformed queries before any shard is contacted.
	if _, err := query.Compile(request.QueryString, request.Parameters); err != nil {
		return &proto.QueryResponse{
			QueryId: request.QueryId,
			Success: false,
			Message: err.Error(),
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.get(request); ok {
			cached.QueryId = request.QueryId
			cached.Message = "From cache: " + cached.Message
			return cached
		}
	}

	report := timing.NewReport()
	targets := c.targets(request)

	dispatches := make([]dispatch, len(targets))
	fanStart := time.Now()

	var wg sync.WaitGroup
	for i, worker := range targets {
		i, worker := i, worker
		wg.Add(1)
		go common.DoWithLabels(map[string]string{
			"process": c.config.ProcessID,
			"shard":   worker.ID,
		}, func() {
			defer wg.Done()
			dispatches[i] = c.dispatch(ctx, worker, request)
		})
	}
	wg.Wait()

	report.Record(c.config.ProcessID, "Fan_Out", time.Since(fanStart))

	// Merge in ascending worker id order, never in arrival order.
	var results []*proto.ResultEntry
	var failed []string
	for _, d := range dispatches {
		if d.err != nil {
			c.log.Warn().
				Err(d.err).
				Str("shard", d.worker.ID).
				Str("query_id", request.QueryId).
				Msg("Shard dispatch failed")
			failed = append(failed, d.worker.ID)
			continue
		}
		report.Record(c.config.ProcessID, "Query_To_"+d.worker.ID, d.elapsed)
		if !d.response.Success {
			failed = append(failed, d.worker.ID)
			continue
		}
		results = append(results, d.response.Results...)
		report.Merge(d.response.Timings)
	}

	report.Record(c.config.ProcessID, "Total_Processing", time.Since(start))

	response := &proto.QueryResponse{
		QueryId:    request.QueryId,
		Success:    len(failed) == 0,
		Results:    results,
		TimingData: report.EncodeLegacy(),
		Timings:    report.Proto(),
	}
	if len(failed) > 0 {
		response.Message = fmt.Sprintf("shard(s) %s unavailable, %d entries from the remaining shards",
			strings.Join(failed, ", "), len(results))
	} else {
		response.Message = fmt.Sprintf("combined results from %d shard(s) (%d entries)",
			len(targets), len(results))
	}

	if c.cache != nil && response.Success {
		c.cache.put(request, response)
	}

	return response
}

func (c *Coordinator) dispatch(ctx context.Context, worker cluster.Process, request *proto.QueryRequest) dispatch {
	d := dispatch{worker: worker}

	client, err := c.pool.GetDataService(worker.Address)
	if err != nil {
		d.err = err
		return d
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	start := time.Now()
	d.response, d.err = client.QueryData(ctx, request)
	d.elapsed = time.Since(start)
	return d
}

// targets resolves the shard set for a query. Only get_by_borough narrows
// the fan-out: every other verb may match records in any shard. A borough
// parameter naming no shard resolves to no targets at all.
func (c *Coordinator) targets(request *proto.QueryRequest) []cluster.Process {
	if request.QueryString == query.GetByBorough {
		borough, ok := store.ParseBorough(request.Parameters[0])
		if !ok {
			return nil
		}
		return []cluster.Process{c.routes[borough]}
	}
	return c.workers
}
