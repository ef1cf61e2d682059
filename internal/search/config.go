package search

import (
	"errors"
	"fmt"
	"time"
)

const (
	// BatchSize is the number of keypairs a worker generates and tests between
	// two checks of the termination flag. The shared counter is updated once
	// per batch.
	BatchSize = 10

	// PollInterval is the sub-interval at which the reporter re-checks the
	// termination flag while waiting out a reporting period.
	PollInterval = 50 * time.Millisecond
)

// ErrInvalidConfig is returned when a Config cannot be used to start a search.
var ErrInvalidConfig = errors.New("invalid search config")

// Config is the resolved, immutable configuration of one search run.
type Config struct {
	Target         string        // Prefix to search for, already folded when IgnoreCase is set
	IgnoreCase     bool          // Compare case-insensitively (ASCII)
	StopOnMatch    bool          // End the run after the first match
	Workers        int           // Number of parallel workers, at least 1
	ReportInterval time.Duration // Throughput report period, zero disables reporting
}

// Validate checks the configuration before any worker is started.
// An empty Target is valid and matches every key.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: worker count must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.ReportInterval < 0 {
		return fmt.Errorf("%w: report interval must not be negative, got %v", ErrInvalidConfig, c.ReportInterval)
	}
	return nil
}
