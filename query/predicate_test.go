package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shahchayan9/gRPC-Communication/store"
)

func record(date, crashTime string, borough store.Borough, street string, injured, killed int) store.Record {
	parsed, _ := time.Parse(store.DateLayout, date)
	return store.Record{
		CrashDate:      date,
		CrashTime:      crashTime,
		Borough:        borough,
		OnStreet:       street,
		PersonsInjured: injured,
		PersonsKilled:  killed,
		Date:           parsed,
	}
}

func TestCompileUnknownVerb(t *testing.T) {
	p, err := Compile("drop_table", nil)
	assert.ErrorIs(t, err, ErrUnknownVerb)
	assert.Nil(t, p)
}

func TestCompileArity(t *testing.T) {
	for _, tc := range []struct {
		verb       string
		parameters []string
	}{
		{GetAll, []string{"extra"}},
		{GetByBorough, nil},
		{GetByBorough, []string{"BROOKLYN", "QUEENS"}},
		{GetByDateRange, []string{"01/01/2021"}},
		{GetByTime, nil},
	} {
		p, err := Compile(tc.verb, tc.parameters)
		assert.ErrorIs(t, err, ErrArity, tc.verb)
		assert.Nil(t, p)
	}
}

func TestGetAll(t *testing.T) {
	p, err := Compile(GetAll, nil)
	assert.NoError(t, err)

	r := record("09/11/2021", "9:35", store.Brooklyn, "ATLANTIC AVENUE", 0, 0)
	assert.True(t, p(&r))
}

func TestGetByBorough(t *testing.T) {
	p, err := Compile(GetByBorough, []string{"brooklyn"})
	assert.NoError(t, err)

	brooklyn := record("09/11/2021", "9:35", store.Brooklyn, "", 0, 0)
	queens := record("09/11/2021", "9:35", store.Queens, "", 0, 0)
	assert.True(t, p(&brooklyn))
	assert.False(t, p(&queens))
}

func TestGetByBoroughUnknown(t *testing.T) {
	p, err := Compile(GetByBorough, []string{"LONDON"})
	assert.NoError(t, err)

	other := record("09/11/2021", "9:35", store.Other, "", 0, 0)
	assert.False(t, p(&other))
}

func TestGetByStreet(t *testing.T) {
	p, err := Compile(GetByStreet, []string{"atlantic"})
	assert.NoError(t, err)

	onStreet := record("09/11/2021", "9:35", store.Brooklyn, "ATLANTIC AVENUE", 0, 0)
	crossStreet := store.Record{CrossStreet: "ATLANTIC AVENUE"}
	offStreet := store.Record{OffStreet: "ATLANTIC AVENUE"}
	elsewhere := record("09/11/2021", "9:35", store.Brooklyn, "FLATBUSH AVENUE", 0, 0)

	assert.True(t, p(&onStreet))
	assert.True(t, p(&crossStreet))
	assert.True(t, p(&offStreet))
	assert.False(t, p(&elsewhere))
}

func TestGetByStreetEmpty(t *testing.T) {
	p, err := Compile(GetByStreet, []string{"   "})
	assert.NoError(t, err)

	r := record("09/11/2021", "9:35", store.Brooklyn, "ATLANTIC AVENUE", 0, 0)
	assert.False(t, p(&r))
}

func TestGetByDateRange(t *testing.T) {
	p, err := Compile(GetByDateRange, []string{"01/01/2021", "12/31/2021"})
	assert.NoError(t, err)

	inside := record("09/11/2021", "9:35", store.Brooklyn, "", 0, 0)
	onStart := record("01/01/2021", "9:35", store.Brooklyn, "", 0, 0)
	onEnd := record("12/31/2021", "9:35", store.Brooklyn, "", 0, 0)
	before := record("12/31/2020", "9:35", store.Brooklyn, "", 0, 0)
	after := record("01/01/2022", "9:35", store.Brooklyn, "", 0, 0)
	undated := store.Record{CrashDate: "not-a-date"}

	assert.True(t, p(&inside))
	assert.True(t, p(&onStart))
	assert.True(t, p(&onEnd))
	assert.False(t, p(&before))
	assert.False(t, p(&after))
	assert.False(t, p(&undated))
}

func TestGetByDateRangeInverted(t *testing.T) {
	p, err := Compile(GetByDateRange, []string{"12/31/2021", "01/01/2021"})
	assert.NoError(t, err)

	r := record("09/11/2021", "9:35", store.Brooklyn, "", 0, 0)
	assert.False(t, p(&r))
}

func TestGetByDateRangeUnparseable(t *testing.T) {
	p, err := Compile(GetByDateRange, []string{"yesterday", "today"})
	assert.NoError(t, err)

	r := record("09/11/2021", "9:35", store.Brooklyn, "", 0, 0)
	assert.False(t, p(&r))
}

func TestInjuriesThreshold(t *testing.T) {
	p, err := Compile(GetCrashesWithInjuries, []string{"2"})
	assert.NoError(t, err)

	below := record("09/11/2021", "9:35", store.Brooklyn, "", 1, 0)
	atThreshold := record("09/11/2021", "9:35", store.Brooklyn, "", 2, 0)
	above := record("09/11/2021", "9:35", store.Brooklyn, "", 5, 0)

	assert.False(t, p(&below))
	assert.True(t, p(&atThreshold))
	assert.True(t, p(&above))
}

func TestFatalitiesThreshold(t *testing.T) {
	p, err := Compile(GetCrashesWithFatalities, []string{"1"})
	assert.NoError(t, err)

	none := record("09/11/2021", "9:35", store.Brooklyn, "", 3, 0)
	fatal := record("09/11/2021", "9:35", store.Brooklyn, "", 0, 1)

	assert.False(t, p(&none))
	assert.True(t, p(&fatal))
}

func TestBadThreshold(t *testing.T) {
	for _, bad := range []string{"many", "-1", "1.5", ""} {
		p, err := Compile(GetCrashesWithInjuries, []string{bad})
		assert.ErrorIs(t, err, ErrArity, bad)
		assert.Nil(t, p)
	}
}

func TestGetByTime(t *testing.T) {
	p, err := Compile(GetByTime, []string{"9:35"})
	assert.NoError(t, err)

	match := record("09/11/2021", "9:35", store.Brooklyn, "", 0, 0)
	miss := record("09/11/2021", "14:20", store.Brooklyn, "", 0, 0)

	assert.True(t, p(&match))
	assert.False(t, p(&miss))
}
