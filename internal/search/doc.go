// Package search implements the parallel vanity keypair search: a fixed pool
// of workers generating keypairs until one whose encoded public key starts
// with the target is found.
//
// # Overview
//
// An Orchestrator owns one run. It creates the two cells shared by every
// participant, starts the workers and an optional reporter, and joins them:
//
//	┌──────────────┐   Flag (termination)    ┌──────────────┐
//	│ Orchestrator │────────────┬───────────▶│   Reporter   │
//	└──────┬───────┘            │            │  (optional)  │
//	       │           Counter (attempts)    └──────▲───────┘
//	       ▼                    │                   │ Drain
//	┌──────────┐ ┌──────────┐ ┌──────────┐          │
//	│ Worker 0 │ │ Worker 1 │ │ Worker N │──────────┘ Add(BatchSize)
//	└────┬─────┘ └────┬─────┘ └────┬─────┘
//	     └────────────┴────────────┴──▶ Sink (one line per match)
//
// # Workers
//
// Each worker repeats: check the Flag, generate and test BatchSize keypairs,
// add BatchSize to the Counter. Every match is emitted to the Sink the moment
// it is found. With StopOnMatch the worker raises the Flag; the other workers
// notice at their next batch boundary, so each may complete at most one more
// batch (and emit matches from it) after the triggering match.
//
// Workers never sleep or block except inside Sink.Emit.
//
// # Reporter
//
// The reporter wakes every PollInterval to check the Flag and, once per
// report interval, drains the Counter and writes "generate: <rate> op/s" to
// the telemetry writer. Results and telemetry go to different writers so the
// result stream stays one parseable line per match.
//
// # Cancellation
//
// Raising the Flag is the only way to stop a run. It is raised by a match
// under StopOnMatch, by a fatal worker error, or when the context passed to
// Run is canceled. Without any of these, Run never returns.
//
// # Concurrency Model
//
//   - Flag and Counter are lock-free atomics
//   - Nothing else is shared between workers
//   - LineSink serializes whole lines with a mutex
//   - Worker totals are read only after the join
package search
