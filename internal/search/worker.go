package search

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/dreamware/vanity/internal/keygen"
	"github.com/dreamware/vanity/internal/match"
)

// WorkerState is the lifecycle state of a Worker.
type WorkerState int32

const (
	// StateIdle means Run has not been called yet.
	StateIdle WorkerState = iota
	// StateRunning means the worker is generating batches.
	StateRunning
	// StateStopping means the worker observed the termination flag (or failed)
	// and is flushing its last counter increment.
	StateStopping
	// StateStopped means Run has returned.
	StateStopped
)

func (s WorkerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("WorkerState(%d)", int32(s))
	}
}

// Worker runs the generate, test, emit loop on one goroutine.
// All of its fields except state are private to that goroutine while Run is
// executing; the orchestrator reads the totals only after Run has returned.
type Worker struct {
	id          int
	gen         keygen.Generator
	matcher     match.Matcher
	stopOnMatch bool
	sink        Sink
	stop        *Flag
	ops         *Counter
	logger      *log.Logger

	state    atomic.Int32
	attempts uint64 // Keypairs generated and tested
	matches  uint64 // Matches emitted
	err      error  // Fatal error that ended the loop, if any
}

func newWorker(id int, cfg Config, gen keygen.Generator, sink Sink, stop *Flag, ops *Counter, logger *log.Logger) *Worker {
	return &Worker{
		id:          id,
		gen:         gen,
		matcher:     match.New(cfg.Target, cfg.IgnoreCase),
		stopOnMatch: cfg.StopOnMatch,
		sink:        sink,
		stop:        stop,
		ops:         ops,
		logger:      logger,
	}
}

// State returns the worker's current lifecycle state.
func (w *Worker) State() WorkerState {
	return WorkerState(w.state.Load())
}

// Run loops until the termination flag is observed at a batch boundary.
// Every batch is followed by a single counter increment. A generation or sink
// failure raises the flag, which ends the whole run, and is kept in w.err.
func (w *Worker) Run() {
	w.state.Store(int32(StateRunning))

	var pending uint64
	for !w.stop.IsSet() {
		n, err := w.batch()
		if err != nil {
			w.err = fmt.Errorf("worker %d: %w", w.id, err)
			if w.stop.Set() {
				w.logger.Printf("worker %d failed, stopping search: %v", w.id, err)
			}
			pending = n
			break
		}
		w.ops.Add(n)
		w.attempts += n
	}

	w.state.Store(int32(StateStopping))
	if pending > 0 {
		w.ops.Add(pending)
		w.attempts += pending
	}
	w.state.Store(int32(StateStopped))
}

// batch performs up to BatchSize attempts and returns how many completed.
func (w *Worker) batch() (uint64, error) {
	for i := 0; i < BatchSize; i++ {
		kp, err := w.gen.Generate()
		if err != nil {
			return uint64(i), err
		}
		if !w.matcher.Match(kp.PublicKey()) {
			continue
		}
		if err := w.sink.Emit(Match{PublicKey: kp.PublicKey(), PrivateKey: kp.PrivateKey()}); err != nil {
			return uint64(i + 1), fmt.Errorf("emit match: %w", err)
		}
		w.matches++
		if w.stopOnMatch && w.stop.Set() {
			w.logger.Printf("worker %d found %s, stopping search", w.id, kp.PublicKey())
		}
	}
	return BatchSize, nil
}
