// Package testutil provides deterministic substitutes for the store's
// sources of nondeterminism (sequence clock, run IDs, wall time), so tests
// and golden comparisons produce byte-identical records across runs.
package testutil

import "sync"

// DeterministicClock is a thread-safe resettable logical clock for tests.
//
// It satisfies store.SeqClock. Unlike the store's production clock it can
// be reset, so the same test body can run repeatedly with identical seq
// values.
type DeterministicClock struct {
	mu  sync.Mutex
	seq int64
}

// NewDeterministicClock creates a new deterministic clock starting at 0.
//
// The first call to Next() returns 1.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{seq: 0}
}

// Next increments and returns the next sequence number.
func (c *DeterministicClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the current sequence number without incrementing.
func (c *DeterministicClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset resets the clock to 0. The next call to Next() returns 1.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
