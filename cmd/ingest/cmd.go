package ingest

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shahchayan9/gRPC-Communication/common"
	"github.com/shahchayan9/gRPC-Communication/ingest"
	"github.com/shahchayan9/gRPC-Communication/store"
)

var (
	inputFile string
	outputDir string

	Cmd = &cobra.Command{
		Use:   "ingest",
		Short: "Partition a raw collision CSV into borough shard files",
		RunE:  exec,
	}
)

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Raw collision CSV to partition")
	Cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "data", "Directory the shard files are written to")
	_ = Cmd.MarkFlagRequired("input")
}

func exec(*cobra.Command, []string) error {
	common.ConfigureLogger()

	counts, err := ingest.Partition(inputFile, outputDir)
	if err != nil {
		return err
	}

	total := 0
	for _, borough := range store.Boroughs {
		log.Info().
			Str("borough", string(borough)).
			Str("file", ingest.ShardFileName(borough)).
			Int("records", counts[borough]).
			Msg("Shard written")
		total += counts[borough]
	}
	log.Info().
		Int("records", total).
		Str("output-dir", outputDir).
		Msg("Partitioning done")
	return nil
}
