package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dreamware/vanity/internal/keygen"
)

// Summary describes a finished run.
type Summary struct {
	Attempts uint64        // Keypairs generated and tested across all workers
	Matches  uint64        // Matches emitted
	Elapsed  time.Duration // Wall time from start to join
	Counted  uint64        // Counter value left at join, equal to Attempts when reporting is disabled
}

// Rate returns the average attempts per second over the whole run.
func (s Summary) Rate() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Attempts) / s.Elapsed.Seconds()
}

// Orchestrator starts the workers and the optional reporter for one
// configuration and waits for all of them to stop.
type Orchestrator struct {
	cfg       Config
	gen       keygen.Generator
	sink      Sink
	telemetry io.Writer
	logger    *log.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTelemetry sets the writer that receives throughput lines.
// Defaults to os.Stderr.
func WithTelemetry(w io.Writer) Option {
	return func(o *Orchestrator) { o.telemetry = w }
}

// WithLogger sets the logger used for lifecycle messages.
// Defaults to the standard logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// New validates cfg and returns an Orchestrator ready to Run.
//
// Parameters:
//   - cfg: Resolved search configuration
//   - gen: Keypair generator shared by every worker
//   - sink: Destination for matches
//
// Returns:
//   - *Orchestrator: Ready to run
//   - error: ErrInvalidConfig if cfg fails validation
//
// Example:
//
//	o, err := search.New(cfg, keygen.NewSolana(), search.NewLineSink(os.Stdout))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	summary, err := o.Run(ctx)
func New(cfg Config, gen keygen.Generator, sink Sink, opts ...Option) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, fmt.Errorf("%w: generator is required", ErrInvalidConfig)
	}
	if sink == nil {
		return nil, fmt.Errorf("%w: sink is required", ErrInvalidConfig)
	}

	o := &Orchestrator{
		cfg:       cfg,
		gen:       gen,
		sink:      sink,
		telemetry: os.Stderr,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Run starts cfg.Workers workers, plus one reporter when a report interval is
// configured, and blocks until all of them have stopped.
//
// Workers stop only once the termination flag is raised: by a match when
// StopOnMatch is set, by a fatal worker error, or by ctx being canceled.
// With StopOnMatch unset and a context that is never canceled, Run does not
// return.
//
// Each call creates its own termination flag and counter, so an Orchestrator
// may be run again, or concurrently, with the same configuration.
//
// The returned error joins every fatal worker error, if any. Cancellation of
// ctx is a clean stop and is not reported as an error.
func (o *Orchestrator) Run(ctx context.Context) (Summary, error) {
	stop := &Flag{}
	ops := &Counter{}

	workers := make([]*Worker, o.cfg.Workers)
	var wg sync.WaitGroup

	start := time.Now()
	o.logger.Printf("search started with %d workers (target %q, ignore case %v, stop on match %v)",
		o.cfg.Workers, o.cfg.Target, o.cfg.IgnoreCase, o.cfg.StopOnMatch)

	for i := range workers {
		w := newWorker(i, o.cfg, o.gen, o.sink, stop, ops, o.logger)
		workers[i] = w
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Run()
		}()
	}

	if o.cfg.ReportInterval > 0 {
		rep := NewReporter(o.cfg.ReportInterval, ops, stop, o.telemetry)
		wg.Add(1)
		go func() {
			defer wg.Done()
			rep.Run()
		}()
	}

	joined := make(chan struct{})
	watched := make(chan struct{})
	go func() {
		defer close(watched)
		select {
		case <-ctx.Done():
			if stop.Set() {
				o.logger.Printf("search interrupted: %v", ctx.Err())
			}
		case <-joined:
		}
	}()

	wg.Wait()
	close(joined)
	<-watched

	summary := Summary{Elapsed: time.Since(start), Counted: ops.Load()}
	var errs []error
	for _, w := range workers {
		summary.Attempts += w.attempts
		summary.Matches += w.matches
		if w.err != nil {
			errs = append(errs, w.err)
		}
	}

	o.logger.Printf("search stopped after %d keys in %v (%d matches)",
		summary.Attempts, summary.Elapsed.Round(time.Millisecond), summary.Matches)

	if len(errs) > 0 {
		return summary, errors.Join(errs...)
	}
	return summary, nil
}
