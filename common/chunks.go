package common

import (
	"strconv"

	pb "google.golang.org/protobuf/proto"

	"github.com/shahchayan9/gRPC-Communication/proto"
)

// BuildChunks pages a query response into a finite chunk sequence. Each chunk
// payload is a marshalled QueryResponse carrying up to pageSize result
// entries; the last chunk additionally carries the message and timing data,
// and is flagged is_last. An empty result set still produces one final chunk
// so that the stream is always terminated explicitly.
func BuildChunks(response *proto.QueryResponse, pageSize int) ([]*proto.DataChunk, error) {
	if pageSize <= 0 {
		pageSize = 1
	}

	var pages [][]*proto.ResultEntry
	results := response.Results
	for len(results) > pageSize {
		pages = append(pages, results[:pageSize])
		results = results[pageSize:]
	}
	pages = append(pages, results)

	chunks := make([]*proto.DataChunk, 0, len(pages))
	for i, page := range pages {
		last := i == len(pages)-1
		payload := &proto.QueryResponse{
			QueryId: response.QueryId,
			Success: response.Success,
			Results: page,
		}
		if last {
			payload.Message = response.Message
			payload.TimingData = response.TimingData
			payload.Timings = response.Timings
		}

		data, err := pb.Marshal(payload)
		if err != nil {
			return nil, err
		}

		chunks = append(chunks, &proto.DataChunk{
			ChunkId: strconv.Itoa(i),
			Data:    data,
			IsLast:  last,
		})
	}

	return chunks, nil
}

// DecodeChunks reassembles the chunk sequence produced by BuildChunks.
func DecodeChunks(chunks []*proto.DataChunk) (*proto.QueryResponse, error) {
	merged := &proto.QueryResponse{}
	for _, chunk := range chunks {
		page := &proto.QueryResponse{}
		if err := pb.Unmarshal(chunk.Data, page); err != nil {
			return nil, err
		}

		merged.QueryId = page.QueryId
		merged.Success = page.Success
		merged.Results = append(merged.Results, page.Results...)
		if chunk.IsLast {
			merged.Message = page.Message
			merged.TimingData = page.TimingData
			merged.Timings = page.Timings
		}
	}
	return merged, nil
}
