package workflow

import (
	"sort"
	"sync"
	"time"

	"sndconvert/internal/encoding"
)

// Summary aggregates the outcomes of one run.
type Summary struct {
	Counts   map[encoding.Outcome]int
	Failures []encoding.Result
	Elapsed  time.Duration
	Workers  int
}

// Count returns how many files ended with outcome.
func (s Summary) Count(outcome encoding.Outcome) int {
	return s.Counts[outcome]
}

// Total returns the number of files processed.
func (s Summary) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

type recorder struct {
	mu       sync.Mutex
	counts   map[encoding.Outcome]int
	failures []encoding.Result
}

func newRecorder() *recorder {
	return &recorder{counts: make(map[encoding.Outcome]int)}
}

func (r *recorder) record(result encoding.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[result.Outcome]++
	if result.Outcome == encoding.OutcomeFailed {
		r.failures = append(r.failures, result)
	}
}

func (r *recorder) summary(elapsed time.Duration, workers int) Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[encoding.Outcome]int, len(r.counts))
	for outcome, n := range r.counts {
		counts[outcome] = n
	}
	failures := append([]encoding.Result(nil), r.failures...)
	sort.Slice(failures, func(i, j int) bool { return failures[i].Path < failures[j].Path })
	return Summary{Counts: counts, Failures: failures, Elapsed: elapsed, Workers: workers}
}
