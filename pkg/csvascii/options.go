// Package csvascii reads typed tables from files and renders them as ASCII.
package csvascii

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Format is the kind of input file.
type Format string

const (
	// FormatAuto detects the format from file content, then extension.
	FormatAuto Format = "auto"
	// FormatCSV reads ';'-separated text with a type header.
	FormatCSV Format = "csv"
	// FormatXLSX reads a worksheet of an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// zipMagic starts every xlsx file.
var zipMagic = []byte("PK\x03\x04")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatCSV, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be auto, csv, or xlsx)", s)
}

// Options configures reading.
type Options struct {
	// Format selects the input format. Empty means FormatAuto.
	Format Format
	// Sheet names the worksheet to read from a workbook.
	// If empty, the first sheet is used.
	Sheet string
	// Encoding names the text encoding of CSV input (e.g. "windows-1252").
	// If empty, UTF-8 is assumed; a byte order mark always wins.
	Encoding string
	// Logger receives debug output. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default read options.
func DefaultOptions() Options {
	return Options{
		Format: FormatAuto,
	}
}

// ResolveFormat returns the format to read path with, given its leading bytes.
func (o Options) ResolveFormat(path string, head []byte) Format {
	if o.Format != "" && o.Format != FormatAuto {
		return o.Format
	}
	if bytes.HasPrefix(head, zipMagic) {
		return FormatXLSX
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX
	}
	return FormatCSV
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
