package store

import (
	"fmt"
	"strings"
	"time"
)

// Borough identifies the shard a crash record belongs to. Records whose
// borough column is blank or does not name one of the four known boroughs
// fall into Other.
type Borough string

const (
	Brooklyn     Borough = "BROOKLYN"
	Queens       Borough = "QUEENS"
	Bronx        Borough = "BRONX"
	StatenIsland Borough = "STATEN ISLAND"
	Other        Borough = "OTHER"
)

// Boroughs lists every shard borough, one per worker process.
var Boroughs = []Borough{Brooklyn, Queens, Bronx, StatenIsland, Other}

// ParseBorough maps a raw borough value to a shard borough. ok is false when
// the value does not name any of the five shards; such records are owned by
// the Other shard at ingestion time, but a query for an unrecognized borough
// must match nothing.
func ParseBorough(s string) (Borough, bool) {
	switch b := Borough(strings.ToUpper(strings.TrimSpace(s))); b {
	case Brooklyn, Queens, Bronx, StatenIsland, Other:
		return b, true
	default:
		return Other, false
	}
}

// DateLayout is the MM/DD/YYYY format used by the crash dataset.
const DateLayout = "01/02/2006"

// Record is one crash incident. Records are immutable after ingestion.
type Record struct {
	CrashDate      string
	CrashTime      string
	Borough        Borough
	ZipCode        string
	Latitude       float64
	Longitude      float64
	OnStreet       string
	CrossStreet    string
	OffStreet      string
	PersonsInjured int
	PersonsKilled  int
	Pedestrians    int

	// Date is CrashDate parsed with DateLayout, zero when unparseable.
	Date time.Time
}

// Street returns the first non-empty street field, for display purposes.
func (r *Record) Street() string {
	if r.OnStreet != "" {
		return r.OnStreet
	}
	if r.CrossStreet != "" {
		return r.CrossStreet
	}
	return r.OffStreet
}

// Display renders the record in the historical wire convention: crash detail
// carried as one formatted string. Older clients scan this text for the
// "Date:", "Time:" and "Killed:" markers, so the marker set must not change.
func (r *Record) Display() string {
	return fmt.Sprintf("CrashData: Date: %s Time: %s Borough: %s Street: %s Injured: %d Killed: %d",
		r.CrashDate, r.CrashTime, r.Borough, r.Street(), r.PersonsInjured, r.PersonsKilled)
}
