package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/wallis/internal/sweep"
)

// MismatchKind categorizes a verification failure for one sweep point.
type MismatchKind string

const (
	// MismatchMissing means the point was never recorded.
	MismatchMissing MismatchKind = "MISSING"

	// MismatchValue means the freshly computed value differs from the record.
	MismatchValue MismatchKind = "VALUE_MISMATCH"
)

// Mismatch describes one verification failure.
type Mismatch struct {
	Kind     MismatchKind `json:"kind"`
	N        int          `json:"n"`
	Stored   float64      `json:"stored,omitempty"`
	Computed float64      `json:"computed"`
}

func (m Mismatch) String() string {
	switch m.Kind {
	case MismatchMissing:
		return fmt.Sprintf("n=%d: no stored record (computed %v)", m.N, m.Computed)
	case MismatchValue:
		return fmt.Sprintf("n=%d: stored %v != computed %v", m.N, m.Stored, m.Computed)
	}
	return fmt.Sprintf("n=%d: unknown mismatch", m.N)
}

// Verify compares a freshly computed report against stored records.
//
// The approximation is a pure deterministic function, so a stored value and
// a recomputed value for the same (sweep, method, n) must be bit-identical;
// comparison is exact float64 equality, not a tolerance. Any drift means
// the stored baseline and the current implementation disagree.
//
// Returns the list of mismatches (empty when everything verifies) and an
// error only for storage failures.
func (s *Store) Verify(ctx context.Context, report *sweep.Report) ([]Mismatch, error) {
	var mismatches []Mismatch

	for _, row := range report.Rows {
		rec, err := s.FindRecord(ctx, report.Sweep.Name, report.Sweep.Method, row.N)
		if errors.Is(err, ErrNotFound) {
			mismatches = append(mismatches, Mismatch{
				Kind:     MismatchMissing,
				N:        row.N,
				Computed: row.Value,
			})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("verify n=%d: %w", row.N, err)
		}

		if rec.Value != row.Value {
			mismatches = append(mismatches, Mismatch{
				Kind:     MismatchValue,
				N:        row.N,
				Stored:   rec.Value,
				Computed: row.Value,
			})
		}
	}

	return mismatches, nil
}
