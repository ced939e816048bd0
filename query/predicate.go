package query

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/shahchayan9/gRPC-Communication/store"
)

// The fixed verb set accepted by the query service.
const (
	GetAll                   = "get_all"
	GetByBorough             = "get_by_borough"
	GetByStreet              = "get_by_street"
	GetByDateRange           = "get_by_date_range"
	GetCrashesWithInjuries   = "get_crashes_with_injuries"
	GetCrashesWithFatalities = "get_crashes_with_fatalities"
	GetByTime                = "get_by_time"
)

var (
	ErrUnknownVerb = errors.New("unknown query verb")
	ErrArity       = errors.New("invalid query parameters")
)

var arities = map[string]int{
	GetAll:                   0,
	GetByBorough:             1,
	GetByStreet:              1,
	GetByDateRange:           2,
	GetCrashesWithInjuries:   1,
	GetCrashesWithFatalities: 1,
	GetByTime:                1,
}

func matchAll(*store.Record) bool { return true }

func matchNone(*store.Record) bool { return false }

// Compile translates a verb and its positional parameters into a predicate.
// Unrecognized verbs and wrong parameter counts are rejected here, before
// any shard is contacted. Semantically empty queries (unknown borough name,
// inverted date range) compile to a match-nothing predicate instead.
func Compile(queryString string, parameters []string) (store.Predicate, error) {
	arity, ok := arities[queryString]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVerb, "%q", queryString)
	}
	if len(parameters) != arity {
		return nil, errors.Wrapf(ErrArity, "%s expects %d parameter(s), got %d",
			queryString, arity, len(parameters))
	}

	switch queryString {
	case GetAll:
		return matchAll, nil

	case GetByBorough:
		borough, ok := store.ParseBorough(parameters[0])
		if !ok {
			return matchNone, nil
		}
		return func(r *store.Record) bool {
			return r.Borough == borough
		}, nil

	case GetByStreet:
		needle := strings.ToLower(strings.TrimSpace(parameters[0]))
		if needle == "" {
			return matchNone, nil
		}
		return func(r *store.Record) bool {
			return strings.Contains(strings.ToLower(r.OnStreet), needle) ||
				strings.Contains(strings.ToLower(r.CrossStreet), needle) ||
				strings.Contains(strings.ToLower(r.OffStreet), needle)
		}, nil

	case GetByDateRange:
		start, err1 := time.Parse(store.DateLayout, strings.TrimSpace(parameters[0]))
		end, err2 := time.Parse(store.DateLayout, strings.TrimSpace(parameters[1]))
		if err1 != nil || err2 != nil || start.After(end) {
			return matchNone, nil
		}
		return func(r *store.Record) bool {
			if r.Date.IsZero() {
				return false
			}
			return !r.Date.Before(start) && !r.Date.After(end)
		}, nil

	case GetCrashesWithInjuries:
		threshold, err := parseThreshold(queryString, parameters[0])
		if err != nil {
			return nil, err
		}
		return func(r *store.Record) bool {
			return r.PersonsInjured >= threshold
		}, nil

	case GetCrashesWithFatalities:
		threshold, err := parseThreshold(queryString, parameters[0])
		if err != nil {
			return nil, err
		}
		return func(r *store.Record) bool {
			return r.PersonsKilled >= threshold
		}, nil

	case GetByTime:
		wanted := strings.TrimSpace(parameters[0])
		return func(r *store.Record) bool {
			return r.CrashTime == wanted
		}, nil
	}

	// Unreachable, every verb in arities is handled above.
	return nil, errors.Wrapf(ErrUnknownVerb, "%q", queryString)
}

func parseThreshold(verb, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, errors.Wrapf(ErrArity, "%s threshold must be a non-negative integer, got %q", verb, s)
	}
	return n, nil
}
