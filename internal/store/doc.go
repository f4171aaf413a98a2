// Package store provides SQLite-backed storage for approximation records.
//
// A record pins the value computed for one (sweep, method, n) point. Writes
// are first-wins (ON CONFLICT DO NOTHING), so the earliest recorded value is
// the baseline; Verify recomputes points and demands bit-identical floats,
// which the pure, deterministic core guarantees.
//
// Ordering uses a store-local logical clock (seq), never the informational
// created_at timestamp. All queries order by seq ASC, id ASC COLLATE BINARY
// for deterministic results.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
