package coordinator

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shahchayan9/gRPC-Communication/cluster"
	"github.com/shahchayan9/gRPC-Communication/common"
	"github.com/shahchayan9/gRPC-Communication/proto"
	"github.com/shahchayan9/gRPC-Communication/query"
	"github.com/shahchayan9/gRPC-Communication/store"
	"github.com/shahchayan9/gRPC-Communication/timing"
	"github.com/shahchayan9/gRPC-Communication/worker"
)

type testCluster struct {
	coordinator *Coordinator
	workers     map[string]*worker.Worker
	client      proto.DataServiceClient
}

var testShards = map[store.Borough][][]string{
	store.Brooklyn: {
		{"09/11/2021", "9:35", "ATLANTIC AVENUE", "2", "0"},
		{"03/26/2022", "11:10", "FLATBUSH AVENUE", "0", "1"},
	},
	store.Queens:       {{"05/14/2022", "8:00", "MAIN STREET", "1", "0"}},
	store.Bronx:        {{"06/01/2022", "17:45", "GRAND CONCOURSE", "0", "0"}},
	store.StatenIsland: {{"07/20/2022", "12:30", "VICTORY BOULEVARD", "3", "0"}},
	store.Other: {
		{"08/02/2022", "9:35", "UNKNOWN ROAD", "0", "0"},
		{"08/03/2022", "23:15", "UNKNOWN ROAD", "1", "1"},
	},
}

var testWorkerIDs = map[store.Borough]string{
	store.Brooklyn:     "B",
	store.Queens:       "C",
	store.Bronx:        "D",
	store.StatenIsland: "E",
	store.Other:        "F",
}

func writeShardFile(t *testing.T, borough store.Borough, rows [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shard.csv")
	f, err := os.Create(path)
	assert.NoError(t, err)

	w := csv.NewWriter(f)
	assert.NoError(t, w.Write(store.Columns))
	for _, r := range rows {
		assert.NoError(t, w.Write([]string{
			r[0], r[1], string(borough), "", "", "", "", r[2], "", "", r[3], r[4], "0",
		}))
	}
	w.Flush()
	assert.NoError(t, w.Error())
	assert.NoError(t, f.Close())
	return path
}

func startTestCluster(t *testing.T, cacheTTL time.Duration) *testCluster {
	t.Helper()

	tc := &testCluster{workers: map[string]*worker.Worker{}}

	clusterConf := cluster.Config{
		Coordinator: cluster.Process{ID: "A", Address: "localhost:0"},
	}
	for _, borough := range store.Boroughs {
		w, err := worker.New(worker.Config{
			ProcessID:   testWorkerIDs[borough],
			Borough:     string(borough),
			DataFile:    writeShardFile(t, borough, testShards[borough]),
			ServiceAddr: "localhost:0",
		})
		assert.NoError(t, err)
		tc.workers[testWorkerIDs[borough]] = w

		clusterConf.Workers = append(clusterConf.Workers, cluster.Process{
			ID:      testWorkerIDs[borough],
			Address: fmt.Sprintf("localhost:%d", w.Port()),
			Borough: string(borough),
		})
	}

	c, err := New(Config{
		ProcessID:      "A",
		ServiceAddr:    "localhost:0",
		Cluster:        clusterConf,
		RequestTimeout: 5 * time.Second,
		CacheTTL:       cacheTTL,
	})
	assert.NoError(t, err)
	tc.coordinator = c

	pool := common.NewClientPool()
	t.Cleanup(func() {
		assert.NoError(t, pool.Close())
		assert.NoError(t, c.Close())
		for _, w := range tc.workers {
			assert.NoError(t, w.Close())
		}
	})

	tc.client, err = pool.GetDataService(fmt.Sprintf("localhost:%d", c.Port()))
	assert.NoError(t, err)
	return tc
}

func TestGetAllDeterministicOrder(t *testing.T) {
	tc := startTestCluster(t, 0)

	response, err := tc.client.QueryData(context.Background(), &proto.QueryRequest{
		QueryId:     "q-1",
		QueryString: query.GetAll,
	})
	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "combined results from 5 shard(s) (7 entries)", response.Message)

	// Entries arrive grouped by worker id ascending, shard order within.
	keys := make([]string, len(response.Results))
	for i, entry := range response.Results {
		keys[i] = entry.Key
	}
	assert.Equal(t, []string{
		"brooklyn_0", "brooklyn_1",
		"queens_0",
		"bronx_0",
		"staten island_0",
		"other_0", "other_1",
	}, keys)

	// The merged report carries coordinator and worker timings.
	parsed := timing.ParseLegacy(response.TimingData)
	assert.Contains(t, parsed, "A")
	assert.Contains(t, parsed["A"], "Fan_Out")
	assert.Contains(t, parsed["A"], "Total_Processing")
	assert.Contains(t, parsed["A"], "Query_To_B")
	assert.Contains(t, parsed["A"], "Query_To_F")
	for _, id := range []string{"B", "C", "D", "E", "F"} {
		assert.Contains(t, parsed, id)
		assert.Contains(t, parsed[id], "Scan")
	}
}

func TestGetByBoroughSingleShard(t *testing.T) {
	tc := startTestCluster(t, 0)

	response, err := tc.client.QueryData(context.Background(), &proto.QueryRequest{
		QueryId:     "q-2",
		QueryString: query.GetByBorough,
		Parameters:  []string{"BROOKLYN"},
	})
	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "combined results from 1 shard(s) (2 entries)", response.Message)
	assert.Len(t, response.Results, 2)

	// Only the owning shard is contacted.
	parsed := timing.ParseLegacy(response.TimingData)
	assert.Contains(t, parsed["A"], "Query_To_B")
	assert.NotContains(t, parsed["A"], "Query_To_C")
}

func TestGetByBoroughUnknown(t *testing.T) {
	tc := startTestCluster(t, 0)

	response, err := tc.client.QueryData(context.Background(), &proto.QueryRequest{
		QueryId:     "q-3",
		QueryString: query.GetByBorough,
		Parameters:  []string{"LONDON"},
	})
	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Empty(t, response.Results)
	assert.Equal(t, "combined results from 0 shard(s) (0 entries)", response.Message)
}

func TestCrossShardPredicates(t *testing.T) {
	tc := startTestCluster(t, 0)

	for _, tcase := range []struct {
		queryString string
		parameters  []string
		expected    int
	}{
		{query.GetCrashesWithInjuries, []string{"1"}, 4},
		{query.GetCrashesWithInjuries, []string{"2"}, 2},
		{query.GetCrashesWithFatalities, []string{"1"}, 2},
		{query.GetByStreet, []string{"avenue"}, 2},
		{query.GetByTime, []string{"9:35"}, 2},
		{query.GetByDateRange, []string{"01/01/2022", "12/31/2022"}, 6},
	} {
		response, err := tc.client.QueryData(context.Background(), &proto.QueryRequest{
			QueryId:     "q-4",
			QueryString: tcase.queryString,
			Parameters:  tcase.parameters,
		})
		assert.NoError(t, err, tcase.queryString)
		assert.True(t, response.Success, tcase.queryString)
		assert.Len(t, response.Results, tcase.expected, tcase.queryString)
	}
}

func TestInjuryThresholdSubset(t *testing.T) {
	tc := startTestCluster(t, 0)

	keysAt := func(threshold string) map[string]bool {
		response, err := tc.client.QueryData(context.Background(), &proto.QueryRequest{
			QueryId:     "q-subset",
			QueryString: query.GetCrashesWithInjuries,
			Parameters:  []string{threshold},
		})
		assert.NoError(t, err)
		assert.True(t, response.Success)

		keys := map[string]bool{}
		for _, entry := range response.Results {
			keys[entry.Key] = true
		}
		return keys
	}

	// Raising the threshold can only shrink the result set: every entry
	// matched at N+1 must also be matched at N.
	lower := keysAt("1")
	higher := keysAt("2")
	assert.Less(t, len(higher), len(lower))
	for key := range higher {
		assert.Contains(t, lower, key)
	}
}

func TestCanceledRequest(t *testing.T) {
	tc := startTestCluster(t, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A canceled caller context stops the fan-out; whatever was gathered is
	// returned as a partial response, never as an RPC error.
	response := tc.coordinator.query(ctx, &proto.QueryRequest{
		QueryId:     "q-canceled",
		QueryString: query.GetAll,
	})
	assert.False(t, response.Success)
	assert.Equal(t, "q-canceled", response.QueryId)
	assert.Contains(t, response.Message, "unavailable")
	for _, id := range []string{"B", "C", "D", "E", "F"} {
		assert.Contains(t, response.Message, id)
	}
	assert.Empty(t, response.Results)
}

func TestInvalidQuery(t *testing.T) {
	tc := startTestCluster(t, 0)

	response, err := tc.client.QueryData(context.Background(), &proto.QueryRequest{
		QueryId:     "q-5",
		QueryString: "drop_table",
	})
	assert.NoError(t, err)
	assert.False(t, response.Success)
	assert.Contains(t, response.Message, "unknown query verb")

	response, err = tc.client.QueryData(context.Background(), &proto.QueryRequest{
		QueryId:     "q-6",
		QueryString: query.GetByBorough,
	})
	assert.NoError(t, err)
	assert.False(t, response.Success)
	assert.Contains(t, response.Message, "invalid query parameters")
}

func TestPartialResults(t *testing.T) {
	tc := startTestCluster(t, 0)

	// Take down the Queens shard, the rest must still answer.
	assert.NoError(t, tc.workers["C"].Close())
	delete(tc.workers, "C")

	response, err := tc.client.QueryData(context.Background(), &proto.QueryRequest{
		QueryId:     "q-7",
		QueryString: query.GetAll,
	})
	assert.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, "shard(s) C unavailable, 6 entries from the remaining shards", response.Message)
	assert.Len(t, response.Results, 6)
	for _, entry := range response.Results {
		assert.NotContains(t, entry.Key, "queens")
	}
}

func TestQueryCache(t *testing.T) {
	tc := startTestCluster(t, time.Minute)

	request := &proto.QueryRequest{
		QueryId:     "q-8",
		QueryString: query.GetByBorough,
		Parameters:  []string{"BRONX"},
	}
	first, err := tc.client.QueryData(context.Background(), request)
	assert.NoError(t, err)
	assert.True(t, first.Success)
	assert.NotContains(t, first.Message, "From cache")

	tc.coordinator.cache.wait()

	second, err := tc.client.QueryData(context.Background(), &proto.QueryRequest{
		QueryId:     "q-9",
		QueryString: query.GetByBorough,
		Parameters:  []string{"BRONX"},
	})
	assert.NoError(t, err)
	assert.True(t, second.Success)
	assert.Equal(t, "q-9", second.QueryId)
	assert.Contains(t, second.Message, "From cache: ")
	assert.Len(t, second.Results, len(first.Results))
}

func TestCacheMissOnDifferentParameters(t *testing.T) {
	tc := startTestCluster(t, time.Minute)

	first, err := tc.client.QueryData(context.Background(), &proto.QueryRequest{
		QueryId:     "q-10",
		QueryString: query.GetCrashesWithInjuries,
		Parameters:  []string{"1"},
	})
	assert.NoError(t, err)
	tc.coordinator.cache.wait()

	second, err := tc.client.QueryData(context.Background(), &proto.QueryRequest{
		QueryId:     "q-11",
		QueryString: query.GetCrashesWithInjuries,
		Parameters:  []string{"2"},
	})
	assert.NoError(t, err)
	assert.NotContains(t, second.Message, "From cache")
	assert.NotEqual(t, len(first.Results), len(second.Results))
}

func TestStreamData(t *testing.T) {
	tc := startTestCluster(t, 0)

	stream, err := tc.client.StreamData(context.Background(), &proto.QueryRequest{
		QueryId:     "q-12",
		QueryString: query.GetAll,
	})
	assert.NoError(t, err)

	var chunks []*proto.DataChunk
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		assert.NoError(t, err)
		chunks = append(chunks, chunk)
	}
	assert.True(t, chunks[len(chunks)-1].IsLast)

	response, err := common.DecodeChunks(chunks)
	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Len(t, response.Results, 7)
	assert.NotEmpty(t, response.TimingData)
}

func TestSendDataRouting(t *testing.T) {
	tc := startTestCluster(t, 0)

	// Addressed to the coordinator itself.
	_, err := tc.client.SendData(context.Background(), &proto.DataMessage{
		MessageId:   "m-1",
		Source:      "client",
		Destination: "A",
		Data:        []byte("ping"),
	})
	assert.NoError(t, err)

	// Forwarded to a worker.
	_, err = tc.client.SendData(context.Background(), &proto.DataMessage{
		MessageId:   "m-2",
		Source:      "client",
		Destination: "D",
		Data:        []byte("ping"),
	})
	assert.NoError(t, err)

	// Unknown destination.
	_, err = tc.client.SendData(context.Background(), &proto.DataMessage{
		MessageId:   "m-3",
		Source:      "client",
		Destination: "Z",
		Data:        []byte("ping"),
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestInvalidClusterConfig(t *testing.T) {
	_, err := New(Config{
		ProcessID:   "A",
		ServiceAddr: "localhost:0",
		Cluster: cluster.Config{
			Coordinator: cluster.Process{ID: "A"},
		},
	})
	assert.Error(t, err)
}
