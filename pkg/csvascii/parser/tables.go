package parser

import (
	"fmt"

	"github.com/quarzz/appodeal/pkg/csvascii/models"
)

// RawRow is one tokenized input row. A nil entry marks an absent field.
type RawRow []*string

// Strings builds a RawRow in which every field is present.
func Strings(fields ...string) RawRow {
	row := make(RawRow, len(fields))
	for i := range fields {
		row[i] = &fields[i]
	}
	return row
}

// Field returns field i; absent fields read as empty text.
func (r RawRow) Field(i int) string {
	if r[i] == nil {
		return ""
	}
	return *r[i]
}

// ReadTable turns tokenized rows into a typed table. The first row is the
// header declaring each column's type; every following row must have one
// field per column and each field must parse as its column's type.
//
// Reading is all-or-nothing: on failure no table is returned and the error
// is a *MalformedTableError.
func ReadTable(rows []RawRow) (*models.Table, error) {
	var header RawRow
	if len(rows) > 0 {
		header = rows[0]
	}
	kinds, err := parseColumnTypes(header)
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return models.NewTable(nil), nil
	}

	cells := make([]models.Row, 0, len(rows)-1)
	for idx, raw := range rows[1:] {
		line := idx + 2 // 1-based, after the header

		// A blank line in a single-column table is one empty field.
		if len(raw) == 0 {
			raw = RawRow{nil}
		}
		if len(raw) != len(kinds) {
			return nil, NewMalformedTableError(line, 0, ReasonColumnCountMismatch,
				fmt.Sprintf("row has %d fields, header declares %d", len(raw), len(kinds)))
		}

		row, err := parseRow(raw, kinds, line)
		if err != nil {
			return nil, err
		}
		cells = append(cells, row)
	}

	return models.NewTable(cells), nil
}

// parseRow parses every field with its column's constructor.
func parseRow(raw RawRow, kinds []models.Kind, line int) (models.Row, error) {
	row := make(models.Row, len(kinds))
	for j, kind := range kinds {
		text := raw.Field(j)
		v, err := models.Parse(kind, text)
		if err != nil {
			return nil, NewMalformedTableError(line, j+1, ReasonInvalidValue,
				fmt.Sprintf("cannot read %q as %s", text, kind))
		}
		row[j] = v
	}
	return row, nil
}
