package models

// Row is one table row; its length equals the table's column count.
type Row []Value

// Table is an ordered, read-only grid of cell values. Rows are validated by
// the reader before the table is built.
type Table struct {
	rows []Row
}

// NewTable returns a table owning rows. The caller must not modify rows
// afterwards.
func NewTable(rows []Row) *Table {
	return &Table{rows: rows}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool { return len(t.rows) == 0 }

// ColumnCount returns the width of the first row, or 0 for an empty table.
func (t *Table) ColumnCount() int {
	if len(t.rows) == 0 {
		return 0
	}
	return len(t.rows[0])
}

// Row returns a copy of row i.
func (t *Table) Row(i int) Row {
	return append(Row(nil), t.rows[i]...)
}

// Cell returns the value at row i, column j.
func (t *Table) Cell(i, j int) Value { return t.rows[i][j] }

// Rows returns a copy of all rows.
func (t *Table) Rows() []Row {
	rows := make([]Row, len(t.rows))
	for i := range t.rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Equal reports whether both tables hold the same values in the same order.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.rows) != len(other.rows) {
		return false
	}
	for i, row := range t.rows {
		if len(row) != len(other.rows[i]) {
			return false
		}
		for j, v := range row {
			if v != other.rows[i][j] {
				return false
			}
		}
	}
	return true
}
