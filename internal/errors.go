package internal

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a validation failure. The set is closed so
// callers can switch on the code instead of comparing strings.
type ErrorCode string

const (
	EmptyDate           ErrorCode = "empty_date"
	MalformedDate       ErrorCode = "malformed_date"
	NonexistentDate     ErrorCode = "nonexistent_date"
	InvalidType         ErrorCode = "invalid_type"
	EmptyAmount         ErrorCode = "empty_amount"
	NotANumber          ErrorCode = "not_a_number"
	InvalidAmount       ErrorCode = "invalid_amount"
	NonPositiveAmount   ErrorCode = "non_positive_amount"
	InsufficientColumns ErrorCode = "insufficient_columns"
)

// ValidationError is an input rejection from the validation pipeline.
// It carries the offending field and value so presentation layers can
// point the user at the exact problem.
type ValidationError struct {
	Code  ErrorCode
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Code)
	}
	return fmt.Sprintf("%s: %s (%q)", e.Field, e.Code, e.Value)
}

// Is lets errors.Is match two validation errors by code alone, so
// tests and callers can compare against &ValidationError{Code: ...}.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Code == t.Code && (t.Field == "" || e.Field == t.Field)
}

// CodeOf extracts the validation error code, or "" for other errors.
func CodeOf(err error) ErrorCode {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}

// IOError is a whole-file failure during import or export. It is
// distinct from per-row validation errors: a row problem is counted
// and skipped, an IOError aborts the operation and leaves the store
// untouched.
type IOError struct {
	Op   string // "import" or "export"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
