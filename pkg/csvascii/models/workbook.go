package models

// Workbook holds one table per sheet of a spreadsheet input.
type Workbook struct {
	// BookName is the input file name (no path).
	BookName string
	// Sheets lists the sheets in workbook order.
	Sheets []Sheet
}

// Sheet returns the sheet with the given name.
func (w *Workbook) Sheet(name string) (Sheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}
