package store

import (
	"time"

	"github.com/roach88/wallis/internal/wallis"
)

// Record is one stored approximation: the value computed for a given
// (sweep, method, n) the first time it was recorded.
type Record struct {
	// ID is the UUIDv7 run identifier assigned at write time.
	ID string `json:"id"`

	// Sweep is the NFC-normalized sweep name the record belongs to.
	Sweep string `json:"sweep"`

	// Method is the approximation strategy used.
	Method wallis.Method `json:"method"`

	// N is the term count.
	N int `json:"n"`

	// Value is the computed approximation.
	Value float64 `json:"value"`

	// AbsError is |Value − π| at record time.
	AbsError float64 `json:"abs_error"`

	// NumeratorDigits and DenominatorDigits are the decimal digit counts of
	// the exact accumulators (zero for the ratio method).
	NumeratorDigits   int `json:"numerator_digits"`
	DenominatorDigits int `json:"denominator_digits"`

	// Seq orders records within a store. Logical clock, not wall time.
	Seq int64 `json:"seq"`

	// CreatedAt is informational only; never used for ordering.
	CreatedAt time.Time `json:"created_at"`
}
