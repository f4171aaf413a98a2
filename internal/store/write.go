package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/wallis/internal/sweep"
)

// WriteRecord inserts an approximation record.
// Uses ON CONFLICT DO NOTHING for first-wins semantics: re-recording the
// same (sweep, method, n) is silently ignored, so the stored value stays
// the baseline that later verifications compare against.
//
// The record's ID, Seq, and CreatedAt are assigned by the store; values
// present on rec are ignored.
func (s *Store) WriteRecord(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records
		(id, sweep, method, n, value, abs_error, num_digits, den_digits, seq, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		s.ids.Generate(),
		rec.Sweep,
		string(rec.Method),
		rec.N,
		rec.Value,
		rec.AbsError,
		rec.NumeratorDigits,
		rec.DenominatorDigits,
		s.clock.Next(),
		s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	return nil
}

// WriteReport records every row of a sweep report.
func (s *Store) WriteReport(ctx context.Context, report *sweep.Report) error {
	for _, row := range report.Rows {
		rec := Record{
			Sweep:             report.Sweep.Name,
			Method:            report.Sweep.Method,
			N:                 row.N,
			Value:             row.Value,
			AbsError:          row.AbsError,
			NumeratorDigits:   row.NumeratorDigits,
			DenominatorDigits: row.DenominatorDigits,
		}
		if err := s.WriteRecord(ctx, rec); err != nil {
			return fmt.Errorf("report row n=%d: %w", row.N, err)
		}
	}
	return nil
}
