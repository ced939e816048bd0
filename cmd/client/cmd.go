package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/shahchayan9/gRPC-Communication/common"
	"github.com/shahchayan9/gRPC-Communication/proto"
	"github.com/shahchayan9/gRPC-Communication/query"
)

var (
	coordinatorAddr string
	requestTimeout  time.Duration
	outputJson      bool
	useStream       bool

	queryAll        bool
	queryBorough    string
	queryStreet     string
	queryDates      []string
	queryInjuries   int
	queryFatalities int
	queryTime       string

	Cmd = &cobra.Command{
		Use:   "client",
		Short: "Run a query against the coordinator",
		Long: `Send one query to the coordinator and print the merged results together
with the per-process timing report.`,
		RunE: exec,
	}

	sendCmd = &cobra.Command{
		Use:   "send <destination> <payload>",
		Short: "Send a raw data message to a cluster process",
		Args:  cobra.ExactArgs(2),
		RunE:  execSend,
	}
)

func init() {
	Cmd.PersistentFlags().StringVarP(&coordinatorAddr, "address", "a", "localhost:6001", "Coordinator service address")
	Cmd.PersistentFlags().DurationVar(&requestTimeout, "request-timeout", 30*time.Second, "Overall request timeout")

	Cmd.Flags().BoolVar(&queryAll, "all", false, "Fetch every record across all shards")
	Cmd.Flags().StringVar(&queryBorough, "borough", "", "Fetch the records of one borough")
	Cmd.Flags().StringVar(&queryStreet, "street", "", "Fetch the records matching a street name")
	Cmd.Flags().StringSliceVar(&queryDates, "dates", nil, "Fetch records in a date range, as START,END (MM/DD/YYYY)")
	Cmd.Flags().IntVar(&queryInjuries, "injuries", -1, "Fetch records with at least N persons injured")
	Cmd.Flags().IntVar(&queryFatalities, "fatalities", -1, "Fetch records with at least N persons killed")
	Cmd.Flags().StringVar(&queryTime, "time", "", "Fetch the records at an exact crash time (HH:MM)")
	Cmd.Flags().BoolVar(&useStream, "stream", false, "Fetch the response as a chunk stream")
	Cmd.Flags().BoolVar(&outputJson, "json", false, "Print the response as JSON")

	Cmd.AddCommand(sendCmd)
}

// buildQuery maps the flag set to a query verb. Exactly one selector flag
// must be given.
func buildQuery() (string, []string, error) {
	type selector struct {
		set        bool
		verb       string
		parameters []string
	}
	selectors := []selector{
		{queryAll, query.GetAll, nil},
		{queryBorough != "", query.GetByBorough, []string{queryBorough}},
		{queryStreet != "", query.GetByStreet, []string{queryStreet}},
		{len(queryDates) > 0, query.GetByDateRange, queryDates},
		{queryInjuries >= 0, query.GetCrashesWithInjuries, []string{fmt.Sprintf("%d", queryInjuries)}},
		{queryFatalities >= 0, query.GetCrashesWithFatalities, []string{fmt.Sprintf("%d", queryFatalities)}},
		{queryTime != "", query.GetByTime, []string{queryTime}},
	}

	var chosen *selector
	for i := range selectors {
		if !selectors[i].set {
			continue
		}
		if chosen != nil {
			return "", nil, errors.New("exactly one query flag must be given")
		}
		chosen = &selectors[i]
	}
	if chosen == nil {
		return "", nil, errors.New("one of --all, --borough, --street, --dates, --injuries, --fatalities or --time is required")
	}
	if chosen.verb == query.GetByDateRange && len(chosen.parameters) != 2 {
		return "", nil, errors.New("--dates takes exactly two values, START,END")
	}
	return chosen.verb, chosen.parameters, nil
}

func exec(*cobra.Command, []string) error {
	common.ConfigureLogger()

	queryString, parameters, err := buildQuery()
	if err != nil {
		return err
	}

	pool := common.NewClientPool()
	defer pool.Close()

	client, err := pool.GetDataService(coordinatorAddr)
	if err != nil {
		return err
	}

	request := &proto.QueryRequest{
		QueryId:     uuid.NewString(),
		QueryString: queryString,
		Parameters:  parameters,
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var response *proto.QueryResponse
	err = backoff.RetryNotify(func() error {
		var err error
		if useStream {
			response, err = fetchStream(ctx, client, request)
		} else {
			response, err = client.QueryData(ctx, request)
		}
		return err
	}, backoff.WithContext(backoff.NewExponentialBackOff(), ctx),
		func(err error, duration time.Duration) {
			_, _ = fmt.Fprintf(os.Stderr, "query failed, retrying in %s: %s\n", duration, err)
		})
	if err != nil {
		return err
	}

	return printResponse(os.Stdout, response)
}

func fetchStream(ctx context.Context, client proto.DataServiceClient, request *proto.QueryRequest) (*proto.QueryResponse, error) {
	stream, err := client.StreamData(ctx, request)
	if err != nil {
		return nil, err
	}

	var chunks []*proto.DataChunk
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
	}
	return common.DecodeChunks(chunks)
}

func printResponse(out io.Writer, response *proto.QueryResponse) error {
	if outputJson {
		data, err := protojson.MarshalOptions{Multiline: true}.Marshal(response)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	}

	status := "OK"
	if !response.Success {
		status = "PARTIAL"
	}
	_, _ = fmt.Fprintf(out, "[%s] %s\n", status, response.Message)
	for _, entry := range response.Results {
		_, _ = fmt.Fprintf(out, "%s\t%s\n", entry.Key, entry.Value.GetStringValue())
	}
	if response.TimingData != "" {
		_, _ = fmt.Fprintf(out, "\n%s", response.TimingData)
	}
	return nil
}

func execSend(_ *cobra.Command, args []string) error {
	common.ConfigureLogger()

	pool := common.NewClientPool()
	defer pool.Close()

	client, err := pool.GetDataService(coordinatorAddr)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	_, err = client.SendData(ctx, &proto.DataMessage{
		MessageId:   uuid.NewString(),
		Source:      "client",
		Destination: args[0],
		Data:        []byte(args[1]),
	})
	if err != nil {
		return err
	}
	fmt.Printf("delivered to %s\n", args[0])
	return nil
}
