package testutil

import (
	"fmt"
	"sync"
)

// SequentialRunIDGenerator generates predictable run IDs for tests:
// run-0001, run-0002, and so on.
//
// It satisfies store.RunIDGenerator. Substituting it for the production
// UUIDv7 generator makes stored records byte-identical across test runs.
//
// Thread-safety: safe for concurrent use via internal mutex.
type SequentialRunIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequentialRunIDGenerator creates a generator with the given prefix.
// An empty prefix defaults to "run".
func NewSequentialRunIDGenerator(prefix string) *SequentialRunIDGenerator {
	if prefix == "" {
		prefix = "run"
	}
	return &SequentialRunIDGenerator{prefix: prefix}
}

// Generate returns the next sequential run ID.
func (g *SequentialRunIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%04d", g.prefix, g.next)
}
