package csvascii

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input path is missing or not a regular file.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnknownEncoding indicates the requested text encoding is not supported.
var ErrUnknownEncoding = errors.New("unknown encoding")

// ReadError represents an error while reading a table from a file.
type ReadError struct {
	Path  string
	Sheet string // empty for CSV input
	Err   error
}

func (e *ReadError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("read %s (sheet %q): %v", e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError.
func NewReadError(path, sheet string, err error) *ReadError {
	return &ReadError{
		Path:  path,
		Sheet: sheet,
		Err:   err,
	}
}
