package pipeline

import (
	"sync/atomic"
	"time"
)

// runStats tracks the run-wide counters mutated concurrently by workers.
// Succeeded and failed are monotonic for the lifetime of the run; in-flight
// counts tasks admitted past backpressure but not yet terminal.
type runStats struct {
	succeeded   atomic.Int64
	failed      atomic.Int64
	inFlight    atomic.Int64
	maxInFlight atomic.Int64
}

// admit records one task entering the in-flight window and updates the
// observed high-water mark.
func (s *runStats) admit() {
	n := s.inFlight.Add(1)
	for {
		high := s.maxInFlight.Load()
		if n <= high || s.maxInFlight.CompareAndSwap(high, n) {
			return
		}
	}
}

// settle records a task reaching a terminal state.
func (s *runStats) settle(succeeded bool) {
	if succeeded {
		s.succeeded.Add(1)
	} else {
		s.failed.Add(1)
	}
	s.inFlight.Add(-1)
}

// Summary is the immutable result of one batch run.
type Summary struct {
	Total       int
	Succeeded   int
	Failed      int
	MaxInFlight int // High-water mark of simultaneously in-flight tasks.
	Elapsed     time.Duration
}

func (s *runStats) summary(total int, elapsed time.Duration) Summary {
	return Summary{
		Total:       total,
		Succeeded:   int(s.succeeded.Load()),
		Failed:      int(s.failed.Load()),
		MaxInFlight: int(s.maxInFlight.Load()),
		Elapsed:     elapsed,
	}
}
