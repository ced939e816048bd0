package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeShardFile(t *testing.T, rows [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shard.csv")
	f, err := os.Create(path)
	assert.NoError(t, err)

	w := csv.NewWriter(f)
	assert.NoError(t, w.Write(Columns))
	assert.NoError(t, w.WriteAll(rows))
	w.Flush()
	assert.NoError(t, w.Error())
	assert.NoError(t, f.Close())
	return path
}

func row(date, crashTime, borough, street, injured, killed string) []string {
	return []string{date, crashTime, borough, "11201", "40.7", "-73.9", "(40.7, -73.9)",
		street, "", "", injured, killed, "0"}
}

func TestLoadShard(t *testing.T) {
	path := writeShardFile(t, [][]string{
		row("09/11/2021", "9:35", "BROOKLYN", "ATLANTIC AVENUE", "2", "0"),
		row("03/26/2022", "11:10", "BROOKLYN", "FLATBUSH AVENUE", "0", "1"),
	})

	shard, err := Load(path, Brooklyn)
	assert.NoError(t, err)
	assert.Equal(t, Brooklyn, shard.Borough())
	assert.Equal(t, 2, shard.Size())
}

func TestLoadBoroughMismatch(t *testing.T) {
	path := writeShardFile(t, [][]string{
		row("09/11/2021", "9:35", "QUEENS", "MAIN STREET", "0", "0"),
	})

	shard, err := Load(path, Brooklyn)
	assert.ErrorIs(t, err, ErrIngestion)
	assert.Nil(t, shard)
}

func TestLoadBadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shard.csv")
	assert.NoError(t, os.WriteFile(path,
		[]byte("DATE,TIME,BOROUGH,ZIP,LAT,LON,LOC,ON,CROSS,OFF,INJ,KILL,PED\n"), 0o644))

	_, err := Load(path, Brooklyn)
	assert.ErrorIs(t, err, ErrIngestion)
}

func TestLoadNegativeCount(t *testing.T) {
	path := writeShardFile(t, [][]string{
		row("09/11/2021", "9:35", "BROOKLYN", "ATLANTIC AVENUE", "-1", "0"),
	})

	_, err := Load(path, Brooklyn)
	assert.ErrorIs(t, err, ErrIngestion)
}

func TestLoadEmptyCountsAndCoordinates(t *testing.T) {
	path := writeShardFile(t, [][]string{
		{"09/11/2021", "9:35", "BROOKLYN", "", "", "", "", "ATLANTIC AVENUE", "", "", "", "", ""},
	})

	shard, err := Load(path, Brooklyn)
	assert.NoError(t, err)
	assert.Equal(t, 1, shard.Size())

	matched, _ := shard.Scan(func(r *Record) bool { return true })
	assert.Equal(t, 0, matched[0].PersonsInjured)
	assert.Equal(t, 0.0, matched[0].Latitude)
}

func TestLoadUnparseableDate(t *testing.T) {
	path := writeShardFile(t, [][]string{
		row("not-a-date", "9:35", "BROOKLYN", "ATLANTIC AVENUE", "0", "0"),
	})

	shard, err := Load(path, Brooklyn)
	assert.NoError(t, err)

	matched, _ := shard.Scan(func(r *Record) bool { return true })
	assert.True(t, matched[0].Date.IsZero())
	assert.Equal(t, "not-a-date", matched[0].CrashDate)
}

func TestParseBorough(t *testing.T) {
	for _, tc := range []struct {
		input   string
		borough Borough
		ok      bool
	}{
		{"BROOKLYN", Brooklyn, true},
		{"brooklyn", Brooklyn, true},
		{" Staten Island ", StatenIsland, true},
		{"OTHER", Other, true},
		{"", Other, false},
		{"LONDON", Other, false},
	} {
		borough, ok := ParseBorough(tc.input)
		assert.Equal(t, tc.borough, borough, tc.input)
		assert.Equal(t, tc.ok, ok, tc.input)
	}
}

func TestScan(t *testing.T) {
	shard := NewShard(Queens, []Record{
		{CrashDate: "09/11/2021", Borough: Queens, PersonsInjured: 3},
		{CrashDate: "09/12/2021", Borough: Queens, PersonsInjured: 0},
		{CrashDate: "09/13/2021", Borough: Queens, PersonsInjured: 1},
	})

	matched, elapsed := shard.Scan(func(r *Record) bool { return r.PersonsInjured > 0 })
	assert.Len(t, matched, 2)
	assert.Equal(t, "09/11/2021", matched[0].CrashDate)
	assert.Equal(t, "09/13/2021", matched[1].CrashDate)
	assert.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))
}

func TestStreetPrecedence(t *testing.T) {
	r := &Record{OnStreet: "A", CrossStreet: "B", OffStreet: "C"}
	assert.Equal(t, "A", r.Street())

	r.OnStreet = ""
	assert.Equal(t, "B", r.Street())

	r.CrossStreet = ""
	assert.Equal(t, "C", r.Street())
}

func TestDisplay(t *testing.T) {
	r := &Record{
		CrashDate:      "09/11/2021",
		CrashTime:      "9:35",
		Borough:        Brooklyn,
		OnStreet:       "ATLANTIC AVENUE",
		PersonsInjured: 2,
		PersonsKilled:  1,
	}
	assert.Equal(t,
		"CrashData: Date: 09/11/2021 Time: 9:35 Borough: BROOKLYN Street: ATLANTIC AVENUE Injured: 2 Killed: 1",
		r.Display())
}
