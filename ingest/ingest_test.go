package ingest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shahchayan9/gRPC-Communication/store"
)

func rawRow(date, crashTime, borough, street string) []string {
	return []string{date, crashTime, borough, "", "", "", "", street, "", "", "0", "0", "0"}
}

func writeRawFile(t *testing.T, rows [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "collisions.csv")
	f, err := os.Create(path)
	assert.NoError(t, err)

	w := csv.NewWriter(f)
	assert.NoError(t, w.Write(store.Columns))
	assert.NoError(t, w.WriteAll(rows))
	w.Flush()
	assert.NoError(t, w.Error())
	assert.NoError(t, f.Close())
	return path
}

func TestShardFileName(t *testing.T) {
	assert.Equal(t, "brooklyn_crashes.csv", ShardFileName(store.Brooklyn))
	assert.Equal(t, "staten_island_crashes.csv", ShardFileName(store.StatenIsland))
	assert.Equal(t, "other_crashes.csv", ShardFileName(store.Other))
}

func TestPartition(t *testing.T) {
	input := writeRawFile(t, [][]string{
		rawRow("09/11/2021", "9:35", "BROOKLYN", "ATLANTIC AVENUE"),
		rawRow("09/12/2021", "10:00", "QUEENS", "MAIN STREET"),
		rawRow("09/13/2021", "11:00", "BRONX", "GRAND CONCOURSE"),
		rawRow("09/14/2021", "12:00", "STATEN ISLAND", "VICTORY BOULEVARD"),
		rawRow("09/15/2021", "13:00", "", "UNKNOWN ROAD"),
		rawRow("09/16/2021", "14:00", "Brooklyn", "FLATBUSH AVENUE"),
		rawRow("09/17/2021", "15:00", "ATLANTIS", "LOST STREET"),
	})
	outputDir := filepath.Join(t.TempDir(), "shards")

	counts, err := Partition(input, outputDir)
	assert.NoError(t, err)
	assert.Equal(t, map[store.Borough]int{
		store.Brooklyn:     2,
		store.Queens:       1,
		store.Bronx:        1,
		store.StatenIsland: 1,
		store.Other:        2,
	}, counts)

	// Every shard file must load cleanly against its assigned borough.
	total := 0
	for _, borough := range store.Boroughs {
		shard, err := store.Load(filepath.Join(outputDir, ShardFileName(borough)), borough)
		assert.NoError(t, err)
		assert.Equal(t, counts[borough], shard.Size())
		total += shard.Size()
	}
	assert.Equal(t, 7, total)
}

func TestPartitionBadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collisions.csv")
	assert.NoError(t, os.WriteFile(path, []byte("A,B,C\n"), 0o644))

	_, err := Partition(path, t.TempDir())
	assert.ErrorIs(t, err, store.ErrIngestion)
}

func TestPartitionMissingInput(t *testing.T) {
	_, err := Partition(filepath.Join(t.TempDir(), "nope.csv"), t.TempDir())
	assert.Error(t, err)
}

func TestPartitionEmptyInput(t *testing.T) {
	input := writeRawFile(t, nil)

	counts, err := Partition(input, t.TempDir())
	assert.NoError(t, err)
	for _, borough := range store.Boroughs {
		assert.Equal(t, 0, counts[borough])
	}
}
