package store

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ErrIngestion marks a shard file a worker must refuse to serve.
var ErrIngestion = errors.New("malformed shard file")

// Columns is the fixed column set of a shard file, in order.
var Columns = []string{
	"CRASH_DATE", "CRASH_TIME", "BOROUGH", "ZIP_CODE", "LATITUDE", "LONGITUDE",
	"LOCATION", "ON_STREET_NAME", "CROSS_STREET_NAME", "OFF_STREET_NAME",
	"NUMBER_OF_PERSONS_INJURED", "NUMBER_OF_PERSONS_KILLED", "NUMBER_OF_PEDESTRIANS",
}

// Predicate is a boolean test over one record.
type Predicate func(*Record) bool

// Shard is the ordered, read-only set of records owned by one worker. Once
// loaded it is never mutated, so concurrent scans need no locking.
type Shard struct {
	borough Borough
	records []Record
}

// NewShard wraps an already-partitioned record slice. Used by tests and by
// the ingestion step; workers load from disk instead.
func NewShard(borough Borough, records []Record) *Shard {
	return &Shard{borough: borough, records: records}
}

// Load reads a shard file and verifies every record against the shard's
// assigned borough. Any malformed row or borough mismatch fails the whole
// load with ErrIngestion: a worker must not serve a partial shard.
func Load(path string, borough Borough) (*Shard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIngestion, "cannot open %s: %s", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Columns)

	header, err := r.Read()
	if err != nil {
		return nil, errors.Wrapf(ErrIngestion, "%s: cannot read header: %s", path, err)
	}
	for i, name := range header {
		if !strings.EqualFold(strings.TrimSpace(name), Columns[i]) {
			return nil, errors.Wrapf(ErrIngestion, "%s: header column %d is %q, expected %q",
				path, i, name, Columns[i])
		}
	}

	s := &Shard{borough: borough}
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrIngestion, "%s:%d: %s", path, line, err)
		}

		rec, err := parseRow(row)
		if err != nil {
			return nil, errors.Wrapf(ErrIngestion, "%s:%d: %s", path, line, err)
		}
		if rec.Borough != borough {
			return nil, errors.Wrapf(ErrIngestion, "%s:%d: record belongs to %s, shard owns %s",
				path, line, rec.Borough, borough)
		}

		s.records = append(s.records, rec)
	}

	log.Info().
		Str("path", path).
		Str("borough", string(borough)).
		Int("records", len(s.records)).
		Msg("Loaded shard")

	return s, nil
}

func parseRow(row []string) (Record, error) {
	borough, _ := ParseBorough(row[2])
	rec := Record{
		CrashDate:   strings.TrimSpace(row[0]),
		CrashTime:   strings.TrimSpace(row[1]),
		Borough:     borough,
		ZipCode:     strings.TrimSpace(row[3]),
		OnStreet:    strings.TrimSpace(row[7]),
		CrossStreet: strings.TrimSpace(row[8]),
		OffStreet:   strings.TrimSpace(row[9]),
	}

	var err error
	if rec.Latitude, err = parseFloat(row[4]); err != nil {
		return rec, errors.Errorf("bad latitude %q", row[4])
	}
	if rec.Longitude, err = parseFloat(row[5]); err != nil {
		return rec, errors.Errorf("bad longitude %q", row[5])
	}
	if rec.PersonsInjured, err = parseCount(row[10]); err != nil {
		return rec, errors.Errorf("bad injured count %q", row[10])
	}
	if rec.PersonsKilled, err = parseCount(row[11]); err != nil {
		return rec, errors.Errorf("bad killed count %q", row[11])
	}
	if rec.Pedestrians, err = parseCount(row[12]); err != nil {
		return rec, errors.Errorf("bad pedestrian count %q", row[12])
	}

	// An unparseable date is tolerated: the record simply never matches a
	// date range query.
	rec.Date, _ = time.Parse(DateLayout, rec.CrashDate)

	return rec, nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("negative count")
	}
	return n, nil
}

func (s *Shard) Borough() Borough {
	return s.borough
}

func (s *Shard) Size() int {
	return len(s.records)
}

// Scan runs a full linear scan and returns the matching records in shard
// order together with the elapsed scan time. The dataset is small enough
// that a secondary index would not pay for itself.
func (s *Shard) Scan(predicate Predicate) ([]Record, time.Duration) {
	start := time.Now()

	var matches []Record
	for i := range s.records {
		if predicate(&s.records[i]) {
			matches = append(matches, s.records[i])
		}
	}

	return matches, time.Since(start)
}
