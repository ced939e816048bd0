package worker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shahchayan9/gRPC-Communication/common"
	"github.com/shahchayan9/gRPC-Communication/proto"
	"github.com/shahchayan9/gRPC-Communication/query"
	"github.com/shahchayan9/gRPC-Communication/store"
	"github.com/shahchayan9/gRPC-Communication/timing"
)

const streamPageSize = 64

// dataService executes queries against the one shard this worker owns.
type dataService struct {
	proto.UnimplementedDataServiceServer

	processID string
	shard     *store.Shard
	log       zerolog.Logger
}

func newDataService(processID string, shard *store.Shard) *dataService {
	return &dataService{
		processID: processID,
		shard:     shard,
		log: log.With().
			Str("component", "worker-service").
			Str("process", processID).
			Logger(),
	}
}

func (s *dataService) QueryData(_ context.Context, request *proto.QueryRequest) (*proto.QueryResponse, error) {
	s.log.Debug().
		Str("query_id", request.QueryId).
		Str("query", request.QueryString).
		Strs("parameters", request.Parameters).
		Msg("Received query")

	return s.execute(request), nil
}

// execute runs the predicate scan. Every failure resolves to a response with
// success=false rather than an RPC error, so that the coordinator can always
// surface a message per shard.
func (s *dataService) execute(request *proto.QueryRequest) *proto.QueryResponse {
	start := time.Now()
	report := timing.NewReport()

	predicate, err := query.Compile(request.QueryString, request.Parameters)
	if err != nil {
		return &proto.QueryResponse{
			QueryId: request.QueryId,
			Success: false,
			Message: err.Error(),
		}
	}

	// A query for a borough this shard does not own simply matches nothing:
	// routing mistakes are the coordinator's concern, not a worker failure.
	matches, elapsed := s.shard.Scan(predicate)
	report.Record(s.processID, "Scan", elapsed)

	results := make([]*proto.ResultEntry, len(matches))
	for i := range matches {
		results[i] = toResultEntry(s.shard.Borough(), i, &matches[i])
	}

	report.Record(s.processID, "Total_Processing", time.Since(start))

	return &proto.QueryResponse{
		QueryId:    request.QueryId,
		Success:    true,
		Message:    fmt.Sprintf("%d record(s) from process %s", len(results), s.processID),
		Results:    results,
		TimingData: report.EncodeLegacy(),
		Timings:    report.Proto(),
	}
}

func (s *dataService) SendData(_ context.Context, message *proto.DataMessage) (*proto.Empty, error) {
	if message.Destination != s.processID {
		return nil, status.Errorf(codes.FailedPrecondition,
			"process %s has no route to %s", s.processID, message.Destination)
	}

	s.log.Info().
		Str("message_id", message.MessageId).
		Str("source", message.Source).
		Int("bytes", len(message.Data)).
		Msg("Accepted data message")

	return &proto.Empty{}, nil
}

func (s *dataService) StreamData(request *proto.QueryRequest, stream proto.DataService_StreamDataServer) error {
	response := s.execute(request)

	chunks, err := common.BuildChunks(response, streamPageSize)
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

// toResultEntry keeps the historical key and string-value conventions while
// also carrying the record fields natively.
func toResultEntry(borough store.Borough, index int, record *store.Record) *proto.ResultEntry {
	return &proto.ResultEntry{
		Key: fmt.Sprintf("%s_%d", strings.ToLower(string(borough)), index),
		Value: &proto.TypedValue{
			Value: &proto.TypedValue_StringValue{StringValue: record.Display()},
		},
		Record: &proto.CrashRecord{
			CrashDate:      record.CrashDate,
			CrashTime:      record.CrashTime,
			Borough:        string(record.Borough),
			ZipCode:        record.ZipCode,
			Latitude:       record.Latitude,
			Longitude:      record.Longitude,
			OnStreet:       record.OnStreet,
			CrossStreet:    record.CrossStreet,
			OffStreet:      record.OffStreet,
			PersonsInjured: int32(record.PersonsInjured),
			PersonsKilled:  int32(record.PersonsKilled),
			Pedestrians:    int32(record.Pedestrians),
		},
	}
}
