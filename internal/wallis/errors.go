package wallis

import (
	"errors"
	"fmt"
)

// DomainError represents a rejected input to an approximation routine.
//
// Domain errors include:
//   - Invalid argument: Term count n is negative
//   - Unknown method: Method name is not one of the registered strategies
//
// DomainError includes structured fields for diagnostics.
type DomainError struct {
	// Code identifies the error category.
	Code DomainErrorCode

	// Message is a human-readable description.
	Message string

	// N is the offending term count (for invalid-argument errors).
	N int

	// Method is the offending method name (for unknown-method errors).
	Method string
}

// DomainErrorCode categorizes domain errors.
type DomainErrorCode string

const (
	// ErrCodeInvalidArgument indicates the term count is outside the valid domain.
	ErrCodeInvalidArgument DomainErrorCode = "INVALID_ARGUMENT"

	// ErrCodeUnknownMethod indicates the requested approximation method doesn't exist.
	ErrCodeUnknownMethod DomainErrorCode = "UNKNOWN_METHOD"
)

// Error implements the error interface.
func (e *DomainError) Error() string {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return fmt.Sprintf("%s: %s (n=%d)", e.Code, e.Message, e.N)
	case ErrCodeUnknownMethod:
		return fmt.Sprintf("%s: %s (method=%q)", e.Code, e.Message, e.Method)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidArgument returns true if the error is a domain violation on n.
// Uses errors.As to handle wrapped errors.
func IsInvalidArgument(err error) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == ErrCodeInvalidArgument
	}
	return false
}

// IsUnknownMethod returns true if the error is an unknown-method error.
// Uses errors.As to handle wrapped errors.
func IsUnknownMethod(err error) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == ErrCodeUnknownMethod
	}
	return false
}

// newInvalidArgument creates a DomainError for a negative term count.
func newInvalidArgument(n int) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidArgument,
		Message: "term count must be non-negative",
		N:       n,
	}
}

// newUnknownMethod creates a DomainError for an unregistered method name.
func newUnknownMethod(method Method) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnknownMethod,
		Message: "no such approximation method",
		Method:  string(method),
	}
}
