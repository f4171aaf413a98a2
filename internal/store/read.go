package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/roach88/wallis/internal/wallis"
)

// ErrNotFound is returned when no record matches a lookup.
var ErrNotFound = errors.New("record not found")

// ReadRecords returns all records for a sweep name.
// Results are ordered deterministically: ORDER BY seq ASC, id ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) if no records exist for the sweep.
func (s *Store) ReadRecords(ctx context.Context, sweepName string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sweep, method, n, value, abs_error, num_digits, den_digits, seq, created_at
		FROM records
		WHERE sweep = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, sweepName)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

// FindRecord returns the record for an exact (sweep, method, n) key.
// Returns ErrNotFound if the point was never recorded.
func (s *Store) FindRecord(ctx context.Context, sweepName string, method wallis.Method, n int) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, sweep, method, n, value, abs_error, num_digits, den_digits, seq, created_at
		FROM records
		WHERE sweep = ? AND method = ? AND n = ?
	`, sweepName, string(method), n)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("record sweep=%s method=%s n=%d: %w", sweepName, method, n, ErrNotFound)
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord scans one record row.
func scanRecord(sc scanner) (Record, error) {
	var rec Record
	var method, createdAt string

	err := sc.Scan(
		&rec.ID,
		&rec.Sweep,
		&method,
		&rec.N,
		&rec.Value,
		&rec.AbsError,
		&rec.NumeratorDigits,
		&rec.DenominatorDigits,
		&rec.Seq,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("scan record: %w", err)
	}

	rec.Method = wallis.Method(method)
	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Record{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}

	return rec, nil
}
