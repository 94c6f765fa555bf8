package airdrop

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInputFile is returned when the input CSV does not exist.
	ErrMissingInputFile = errors.New("missing input file")

	// ErrInvalidAddress is returned when an address fails the strategy's validation rule.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrDuplicateAddress is returned when a normalized address appears more than once.
	ErrDuplicateAddress = errors.New("duplicate address")

	// ErrInvalidAmount is returned when an amount is empty, not numeric, zero or negative.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrEmptyInput is returned when the input holds no rows once blank lines are skipped.
	ErrEmptyInput = errors.New("input contains no rows")

	// ErrUnexpectedDecimals is returned when a manifest does not carry ManifestDecimals.
	ErrUnexpectedDecimals = errors.New("unexpected decimals")
)

// RowError reports the first row that failed validation.
type RowError struct {
	// Line is the 1-based line number in the input file.
	Line int
	// Value is the offending field as read from the input.
	Value string
	// Kind is one of the sentinel errors of this package.
	Kind error
	// Err is the underlying cause, if any.
	Err error
}

func (e *RowError) Error() string {
	msg := fmt.Sprintf("line %d: %s %q", e.Line, e.Kind, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *RowError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

func rowError(line int, value string, kind, cause error) error {
	return &RowError{Line: line, Value: value, Kind: kind, Err: cause}
}
