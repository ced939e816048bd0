// Package ingest implements the one-time partitioning step: it splits a raw
// collision CSV into one shard file per borough, the files workers load at
// startup. The query path never writes to these files.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/shahchayan9/gRPC-Communication/store"
)

// ShardFileName returns the conventional file name for a borough shard.
func ShardFileName(borough store.Borough) string {
	name := strings.ReplaceAll(strings.ToLower(string(borough)), " ", "_")
	return name + "_crashes.csv"
}

// Partition reads the raw CSV at inputPath and writes one shard file per
// borough under outputDir. Rows with a blank or unrecognized borough go to
// the OTHER shard. It returns the number of records written per borough.
func Partition(inputPath, outputDir string) (map[store.Borough]int, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open input file")
	}
	defer in.Close()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create output directory")
	}

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = len(store.Columns)

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(store.ErrIngestion, "%s: cannot read header: %s", inputPath, err)
	}
	for i, name := range header {
		if !strings.EqualFold(strings.TrimSpace(name), store.Columns[i]) {
			return nil, errors.Wrapf(store.ErrIngestion, "%s: header column %d is %q, expected %q",
				inputPath, i, name, store.Columns[i])
		}
	}

	writers := make(map[store.Borough]*csv.Writer, len(store.Boroughs))
	files := make([]*os.File, 0, len(store.Boroughs))
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()

	for _, borough := range store.Boroughs {
		f, err := os.Create(filepath.Join(outputDir, ShardFileName(borough)))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create shard file")
		}
		files = append(files, f)

		w := csv.NewWriter(f)
		if err := w.Write(store.Columns); err != nil {
			return nil, errors.Wrap(err, "failed to write shard header")
		}
		writers[borough] = w
	}

	counts := make(map[store.Borough]int, len(store.Boroughs))
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(store.ErrIngestion, "%s:%d: %s", inputPath, line, err)
		}

		borough, _ := store.ParseBorough(row[2])
		if err := writers[borough].Write(row); err != nil {
			return nil, errors.Wrap(err, "failed to write shard row")
		}
		counts[borough]++
	}

	for borough, w := range writers {
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, errors.Wrapf(err, "failed to flush %s shard", borough)
		}
	}

	log.Info().
		Str("input", inputPath).
		Str("output", outputDir).
		Interface("counts", counts).
		Msg("Partitioned crash data")

	return counts, nil
}
