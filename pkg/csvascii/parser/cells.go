package parser

import (
	"github.com/xuri/excelize/v2"
)

// ExtractRows reads a worksheet as tokenized rows, the first being the header.
//
// excelize drops trailing empty cells, so a non-empty row narrower than the
// header is padded with absent fields. Empty rows stay empty; ReadTable gives
// them the same treatment as blank CSV lines.
func ExtractRows(f *excelize.File, sheetName string) ([]RawRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []RawRow
	width := 0
	for rowIdx, row := range rows {
		if rowIdx == 0 {
			width = len(row)
		}

		raw := Strings(row...)
		if len(raw) > 0 && len(raw) < width {
			raw = append(raw, make(RawRow, width-len(raw))...)
		}
		result = append(result, raw)
	}

	return result, nil
}
