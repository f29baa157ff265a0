package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedTable is the single failure condition reported by ReadTable.
var ErrMalformedTable = errors.New("malformed table")

// Reason classifies why a table could not be read.
type Reason string

const (
	// ReasonUnknownType means a header token is not int, string or money.
	ReasonUnknownType Reason = "unknown_type"
	// ReasonColumnCountMismatch means a row's field count differs from the header.
	ReasonColumnCountMismatch Reason = "column_count_mismatch"
	// ReasonInvalidValue means a field does not parse as its column type.
	ReasonInvalidValue Reason = "invalid_value"
)

// MalformedTableError describes where reading failed. It unwraps to
// ErrMalformedTable only; the lower-level parse error is not exposed.
type MalformedTableError struct {
	Line   int    // 1-based input row, header included
	Column int    // 1-based column, 0 when the whole row is at fault
	Reason Reason // category of the failure
	Detail string // human-readable explanation
}

func (e *MalformedTableError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("%v at row %d, column %d (%s): %s", ErrMalformedTable, e.Line, e.Column, e.Reason, e.Detail)
	}
	return fmt.Sprintf("%v at row %d (%s): %s", ErrMalformedTable, e.Line, e.Reason, e.Detail)
}

func (e *MalformedTableError) Unwrap() error {
	return ErrMalformedTable
}

// NewMalformedTableError creates a new MalformedTableError.
func NewMalformedTableError(line, column int, reason Reason, detail string) *MalformedTableError {
	return &MalformedTableError{
		Line:   line,
		Column: column,
		Reason: reason,
		Detail: detail,
	}
}
