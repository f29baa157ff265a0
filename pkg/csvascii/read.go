package csvascii

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quarzz/appodeal/pkg/csvascii/models"
	"github.com/quarzz/appodeal/pkg/csvascii/parser"
	"github.com/xuri/excelize/v2"
)

// Read reads a typed table from a CSV file or a workbook sheet.
// Malformed content yields an error matching parser.ErrMalformedTable.
func Read(path string, opts Options) (*models.Table, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	log := opts.logger()
	format := opts.ResolveFormat(path, data)
	log.Debug("reading table", "path", path, "format", format, "bytes", len(data))

	var table *models.Table
	switch format {
	case FormatXLSX:
		f, err := openWorkbook(path, data)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		sheetName := opts.Sheet
		if sheetName == "" {
			sheetName = f.GetSheetName(0)
		}
		table, err = readSheet(f, path, sheetName)
		if err != nil {
			return nil, err
		}
	default:
		table, err = readCSV(path, data, opts.Encoding)
		if err != nil {
			return nil, err
		}
	}

	log.Debug("table read", "path", path, "rows", table.Len(), "columns", table.ColumnCount())
	return table, nil
}

// ReadWorkbook reads every sheet of a workbook. CSV input becomes a
// single sheet named after the file.
func ReadWorkbook(path string, opts Options) (*models.Workbook, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	log := opts.logger()
	bookName := filepath.Base(path)
	format := opts.ResolveFormat(path, data)
	log.Debug("reading workbook", "path", path, "format", format)

	if format != FormatXLSX {
		table, err := readCSV(path, data, opts.Encoding)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(bookName, filepath.Ext(bookName))
		return &models.Workbook{
			BookName: bookName,
			Sheets:   []models.Sheet{{Name: name, Table: table}},
		}, nil
	}

	f, err := openWorkbook(path, data)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Read every sheet; the first malformed one fails the workbook
	var sheets []models.Sheet
	for _, sheetName := range f.GetSheetList() {
		table, err := readSheet(f, path, sheetName)
		if err != nil {
			return nil, err
		}
		log.Debug("sheet read", "sheet", sheetName, "rows", table.Len())
		sheets = append(sheets, models.Sheet{Name: sheetName, Table: table})
	}

	return &models.Workbook{
		BookName: bookName,
		Sheets:   sheets,
	}, nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && !info.Mode().IsRegular()) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func readCSV(path string, data []byte, encoding string) (*models.Table, error) {
	text, err := decodeText(data, encoding)
	if err != nil {
		return nil, NewReadError(path, "", err)
	}
	rows, err := parser.ReadCSV(bytes.NewReader(text))
	if err != nil {
		return nil, NewReadError(path, "", err)
	}
	table, err := parser.ReadTable(rows)
	if err != nil {
		return nil, NewReadError(path, "", err)
	}
	return table, nil
}

func openWorkbook(path string, data []byte) (*excelize.File, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, NewReadError(path, "", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	return f, nil
}

func readSheet(f *excelize.File, path, sheetName string) (*models.Table, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, NewReadError(path, sheetName, ErrSheetNotFound)
	}
	rows, err := parser.ExtractRows(f, sheetName)
	if err != nil {
		return nil, NewReadError(path, sheetName, err)
	}
	table, err := parser.ReadTable(rows)
	if err != nil {
		return nil, NewReadError(path, sheetName, err)
	}
	return table, nil
}
