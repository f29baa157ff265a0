package models

// Sheet is a named table read from one worksheet.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// Table is the typed content of the sheet.
	Table *Table
}
