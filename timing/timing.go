// Package timing builds the per-process, per-operation elapsed time report
// attached to every query response. The structured form travels natively in
// the response schema; the legacy "[Process X]" text block is kept only for
// tooling that still parses it line by line.
package timing

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shahchayan9/gRPC-Communication/proto"
)

// Report collects operation timings for one query. A report lives for a
// single request and is never shared between goroutines: fan-in merges
// worker timings only after every dispatch has completed.
type Report struct {
	processes map[string]map[string]float64
}

func NewReport() *Report {
	return &Report{processes: map[string]map[string]float64{}}
}

// Record stores the elapsed time of one operation on one process,
// overwriting any previous value for the same pair.
func (r *Report) Record(processID, operation string, elapsed time.Duration) {
	ops := r.processes[processID]
	if ops == nil {
		ops = map[string]float64{}
		r.processes[processID] = ops
	}
	ops[operation] = elapsed.Seconds()
}

// Merge folds a downstream response's timings into this report.
func (r *Report) Merge(timings []*proto.ProcessTiming) {
	for _, pt := range timings {
		for _, op := range pt.Operations {
			ops := r.processes[pt.ProcessId]
			if ops == nil {
				ops = map[string]float64{}
				r.processes[pt.ProcessId] = ops
			}
			ops[op.Operation] = op.Seconds
		}
	}
}

// Seconds returns the recorded time for one process/operation pair.
func (r *Report) Seconds(processID, operation string) (float64, bool) {
	seconds, ok := r.processes[processID][operation]
	return seconds, ok
}

// Proto renders the report in the wire schema, sorted by process id and
// operation name so that identical queries produce identical responses.
func (r *Report) Proto() []*proto.ProcessTiming {
	ids := make([]string, 0, len(r.processes))
	for id := range r.processes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*proto.ProcessTiming, 0, len(ids))
	for _, id := range ids {
		ops := r.processes[id]
		names := make([]string, 0, len(ops))
		for name := range ops {
			names = append(names, name)
		}
		sort.Strings(names)

		pt := &proto.ProcessTiming{ProcessId: id}
		for _, name := range names {
			pt.Operations = append(pt.Operations, &proto.OperationTiming{
				Operation: name,
				Seconds:   ops[name],
			})
		}
		out = append(out, pt)
	}
	return out
}

// EncodeLegacy renders the report as the historical text block:
//
//	[Process A]
//	Total_Processing: 0.000123 seconds
//
// The format is consumed by line-oriented parsers in existing tooling and
// must stay stable.
func (r *Report) EncodeLegacy() string {
	var b strings.Builder
	for _, pt := range r.Proto() {
		fmt.Fprintf(&b, "[Process %s]\n", pt.ProcessId)
		for _, op := range pt.Operations {
			fmt.Fprintf(&b, "%s: %.6f seconds\n", op.Operation, op.Seconds)
		}
	}
	return b.String()
}

var (
	legacyProcess   = regexp.MustCompile(`^\s*\[Process\s+([A-Za-z0-9_-]+)\]\s*$`)
	legacyOperation = regexp.MustCompile(`^\s*([A-Za-z_]+)\s*:\s*([0-9.]+)\s*seconds.*$`)
)

// ParseLegacy reads a legacy text block back into process -> operation ->
// seconds form. Lines outside any "[Process X]" section and lines that do
// not match the operation grammar are ignored, mirroring the tolerant
// parsers this format historically had.
func ParseLegacy(s string) map[string]map[string]float64 {
	out := map[string]map[string]float64{}
	var current map[string]float64

	for _, line := range strings.Split(s, "\n") {
		if m := legacyProcess.FindStringSubmatch(line); m != nil {
			current = out[m[1]]
			if current == nil {
				current = map[string]float64{}
				out[m[1]] = current
			}
			continue
		}
		if current == nil {
			continue
		}
		if m := legacyOperation.FindStringSubmatch(line); m != nil {
			if seconds, err := strconv.ParseFloat(m[2], 64); err == nil {
				current[m[1]] = seconds
			}
		}
	}
	return out
}
