package coordinator

import (
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
	pb "google.golang.org/protobuf/proto"

	"github.com/shahchayan9/gRPC-Communication/proto"
)

const (
	cacheNumCounters = 1 << 12
	cacheMaxCost     = 16 * 1024 * 1024
)

// queryCache keeps recently merged responses for a short TTL, keyed by verb
// and parameters. Only fully successful responses are cached, so a shard
// outage is never masked by a stale hit.
type queryCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func newQueryCache(ttl time.Duration) (*queryCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cacheNumCounters,
		MaxCost:     cacheMaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &queryCache{cache: cache, ttl: ttl}, nil
}

func cacheKey(request *proto.QueryRequest) string {
	return request.QueryString + "\x00" + strings.Join(request.Parameters, "\x00")
}

func (qc *queryCache) get(request *proto.QueryRequest) (*proto.QueryResponse, bool) {
	value, ok := qc.cache.Get(cacheKey(request))
	if !ok {
		return nil, false
	}
	// Clone so that per-request fields can be rewritten by the caller.
	return pb.Clone(value.(*proto.QueryResponse)).(*proto.QueryResponse), true
}

func (qc *queryCache) put(request *proto.QueryRequest, response *proto.QueryResponse) {
	clone := pb.Clone(response).(*proto.QueryResponse)
	qc.cache.SetWithTTL(cacheKey(request), clone, int64(pb.Size(response)), qc.ttl)
}

// wait flushes the admission buffers. Only used by tests.
func (qc *queryCache) wait() {
	qc.cache.Wait()
}

func (qc *queryCache) close() {
	qc.cache.Close()
}
