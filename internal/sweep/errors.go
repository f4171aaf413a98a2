package sweep

import (
	"errors"
	"fmt"
)

// ConvergenceError reports a violated convergence property in a sweep run.
type ConvergenceError struct {
	// Code identifies the error category.
	Code ConvergenceErrorCode

	// Sweep names the affected sweep.
	Sweep string

	// N is the term count at which the property failed.
	N int

	// Message is a human-readable description.
	Message string
}

// ConvergenceErrorCode categorizes convergence errors.
type ConvergenceErrorCode string

const (
	// ErrCodeErrorIncreased indicates abs error grew between consecutive points.
	ErrCodeErrorIncreased ConvergenceErrorCode = "ERROR_INCREASED"

	// ErrCodeToleranceExceeded indicates the final point misses the declared tolerance.
	ErrCodeToleranceExceeded ConvergenceErrorCode = "TOLERANCE_EXCEEDED"
)

// Error implements the error interface.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: %s (sweep=%s, n=%d)", e.Code, e.Message, e.Sweep, e.N)
}

// IsToleranceError returns true if the error is a tolerance violation.
// Uses errors.As to handle wrapped errors.
func IsToleranceError(err error) bool {
	var ce *ConvergenceError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeToleranceExceeded
	}
	return false
}
