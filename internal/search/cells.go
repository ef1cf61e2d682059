package search

import "sync/atomic"

// Flag is the run-wide termination flag.
// It starts unset and, once set, stays set for the rest of the run.
// Observers poll it; nobody is notified when it changes.
type Flag struct {
	set atomic.Bool
}

// Set raises the flag. It is idempotent and safe to call from any goroutine.
// It reports whether this call performed the transition.
func (f *Flag) Set() bool {
	return f.set.CompareAndSwap(false, true)
}

// IsSet reports whether the flag has been raised. It never blocks.
func (f *Flag) IsSet() bool {
	return f.set.Load()
}

// Counter counts generated keypairs across all workers.
// Workers add whole batches; the reporter drains it once per interval.
type Counter struct {
	n atomic.Uint64
}

// Add adds delta to the counter.
func (c *Counter) Add(delta uint64) {
	c.n.Add(delta)
}

// Load returns the current value without resetting it.
func (c *Counter) Load() uint64 {
	return c.n.Load()
}

// Drain returns the current value and resets the counter to zero in one step.
// An Add racing with Drain lands in exactly one of the two windows.
func (c *Counter) Drain() uint64 {
	return c.n.Swap(0)
}
