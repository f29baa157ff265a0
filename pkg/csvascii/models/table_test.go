package models

import (
	"testing"

	"gotest.tools/v3/assert"
)

func sampleTable() *Table {
	return NewTable([]Row{
		{NewInteger(1), ParseText("a"), NewMoney(100)},
		{NewInteger(2), ParseText(""), NewMoney(-5)},
	})
}

func TestTableDimensions(t *testing.T) {
	table := sampleTable()
	assert.Equal(t, table.Len(), 2)
	assert.Equal(t, table.ColumnCount(), 3)
	assert.Assert(t, !table.Empty())
	assert.Equal(t, table.Cell(1, 2), Value(NewMoney(-5)))

	empty := NewTable(nil)
	assert.Assert(t, empty.Empty())
	assert.Equal(t, empty.ColumnCount(), 0)
}

func TestTableRowsAreCopies(t *testing.T) {
	table := sampleTable()
	rows := table.Rows()
	rows[0][0] = NewInteger(99)
	row := table.Row(1)
	row[1] = ParseText("changed")

	assert.Equal(t, table.Cell(0, 0), Value(NewInteger(1)))
	assert.Equal(t, table.Cell(1, 1), Value(ParseText("")))
}

func TestTableEqual(t *testing.T) {
	tests := []struct {
		name     string
		other    *Table
		expected bool
	}{
		{"same values", sampleTable(), true},
		{"nil", nil, false},
		{"fewer rows", NewTable([]Row{{NewInteger(1), ParseText("a"), NewMoney(100)}}), false},
		{"different kind", NewTable([]Row{
			{NewInteger(1), ParseText("a"), NewInteger(100)},
			{NewInteger(2), ParseText(""), NewMoney(-5)},
		}), false},
		{"shorter row", NewTable([]Row{
			{NewInteger(1), ParseText("a")},
			{NewInteger(2), ParseText(""), NewMoney(-5)},
		}), false},
	}

	for _, tt := range tests {
		if result := sampleTable().Equal(tt.other); result != tt.expected {
			t.Errorf("%s: Equal = %v, expected %v", tt.name, result, tt.expected)
		}
	}
	assert.Assert(t, NewTable(nil).Equal(NewTable([]Row{})))
}

func TestWorkbookSheet(t *testing.T) {
	wb := &Workbook{
		BookName: "book.xlsx",
		Sheets: []Sheet{
			{Name: "First", Table: sampleTable()},
			{Name: "Second", Table: NewTable(nil)},
		},
	}

	s, ok := wb.Sheet("Second")
	assert.Assert(t, ok)
	assert.Assert(t, s.Table.Empty())

	_, ok = wb.Sheet("Missing")
	assert.Assert(t, !ok)
}
