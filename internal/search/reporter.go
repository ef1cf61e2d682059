package search

import (
	"fmt"
	"io"
	"time"
)

// Sample is one throughput measurement taken by the Reporter.
type Sample struct {
	Count   uint64        // Keypairs counted since the previous drain
	Elapsed time.Duration // Wall time since the previous drain
	Rate    float64       // Count per second over Elapsed
}

// Reporter periodically drains the shared counter and writes the resulting
// rate to a diagnostic writer. It wakes every poll sub-interval to check the
// termination flag, so it stops within one poll of the flag being raised
// rather than waiting out a full reporting period.
type Reporter struct {
	interval time.Duration    // How often to emit a rate line
	poll     time.Duration    // How often to check the termination flag
	ops      *Counter         // Counter drained once per interval
	stop     *Flag            // Termination flag
	out      io.Writer        // Diagnostic output, never the result stream
	now      func() time.Time // Clock, replaceable in tests
	last     time.Time        // Time of the previous drain
}

// NewReporter creates a reporter that emits a rate line every interval.
//
// Parameters:
//   - interval: Reporting period (must be positive)
//   - ops: Counter the workers add to
//   - stop: Termination flag shared with the workers
//   - out: Diagnostic writer, typically os.Stderr
//
// Example:
//
//	rep := NewReporter(5*time.Second, ops, stop, os.Stderr)
//	go rep.Run()
func NewReporter(interval time.Duration, ops *Counter, stop *Flag, out io.Writer) *Reporter {
	return &Reporter{
		interval: interval,
		poll:     PollInterval,
		ops:      ops,
		stop:     stop,
		out:      out,
		now:      time.Now,
	}
}

// Run blocks until the termination flag is observed, emitting one line per
// elapsed interval in the form "generate: 1234.56 op/s".
func (r *Reporter) Run() {
	r.last = r.now()
	windowStart := r.last

	ticker := time.NewTicker(r.poll)
	defer ticker.Stop()

	for range ticker.C {
		if r.stop.IsSet() {
			return
		}
		if r.now().Sub(windowStart) < r.interval {
			continue
		}
		s := r.sample()
		windowStart = r.last
		fmt.Fprintf(r.out, "generate: %.2f op/s\n", s.Rate)
	}
}

// sample drains the counter and computes the rate since the previous drain.
func (r *Reporter) sample() Sample {
	now := r.now()
	elapsed := now.Sub(r.last)
	count := r.ops.Drain()
	r.last = now

	s := Sample{Count: count, Elapsed: elapsed}
	if elapsed > 0 {
		s.Rate = float64(count) / elapsed.Seconds()
	}
	return s
}
