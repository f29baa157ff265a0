package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// Separator is the field delimiter of CSV input.
const Separator = ';'

var newline = []byte{'\n'}

// ReadCSV tokenizes Separator-delimited input into rows of fields.
//
// Unlike encoding/csv, blank lines are kept as zero-field rows so that a
// single-column table can hold empty values. Quoted fields follow RFC 4180.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV input: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = Separator
	reader.FieldsPerRecord = -1

	var rows []RawRow
	var offset int64
	nextLine := 1 // first input line not yet turned into a row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		// encoding/csv skips empty lines; put them back.
		start, _ := reader.FieldPos(0)
		for ; nextLine < start; nextLine++ {
			rows = append(rows, RawRow{})
			offset += int64(bytes.IndexByte(data[offset:], '\n') + 1)
		}
		rows = append(rows, Strings(record...))

		end := reader.InputOffset()
		nextLine += bytes.Count(data[offset:end], newline)
		offset = end
	}

	// Every newline left after the last record ends a blank line.
	for n := bytes.Count(data[offset:], newline); n > 0; n-- {
		rows = append(rows, RawRow{})
	}
	return rows, nil
}
