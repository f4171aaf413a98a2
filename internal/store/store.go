package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for approximation records.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db    *sql.DB
	ids   RunIDGenerator
	clock SeqClock
	now   func() time.Time
}

// RunIDGenerator produces unique run identifiers for records.
// Abstracted so tests can substitute deterministic IDs.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-ordered UUIDv7 run IDs.
// Uses github.com/google/uuid package for RFC 4122 compliant UUIDs.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 string.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// SeqClock supplies monotonic sequence numbers for record ordering.
// Ordering always uses seq, never the informational created_at timestamp.
type SeqClock interface {
	Next() int64
}

// atomicClock is the production SeqClock.
type atomicClock struct {
	seq atomic.Int64
}

// newClockAt creates a clock resuming from a specific sequence number.
// The next call to Next() returns start+1.
func newClockAt(start int64) *atomicClock {
	c := &atomicClock{}
	c.seq.Store(start)
	return c
}

func (c *atomicClock) Next() int64 {
	return c.seq.Add(1)
}

// Option configures a Store.
type Option func(*Store)

// WithRunIDGenerator overrides the run ID generator (for testing).
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithSeqClock overrides the sequence clock (for testing).
func WithSeqClock(c SeqClock) Option {
	return func(s *Store) { s.clock = c }
}

// WithNow overrides the wall-clock source (for testing).
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and the schema automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// The sequence clock resumes from the highest stored seq, so records
// written after a reopen continue the existing ordering.
//
// This function is idempotent - safe to call multiple times.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1) // Single writer to avoid SQLITE_BUSY errors
	db.SetMaxIdleConns(1) // Keep one connection ready

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	// Resume the logical clock from the highest persisted seq, so records
	// written after a reopen keep sorting after everything already stored.
	var maxSeq int64
	if err := db.QueryRow("SELECT COALESCE(MAX(seq), 0) FROM records").Scan(&maxSeq); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read max seq: %w", err)
	}

	s := &Store{
		db:    db,
		ids:   UUIDv7Generator{},
		clock: newClockAt(maxSeq),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the database connection.
// Should be called when the store is no longer needed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}
