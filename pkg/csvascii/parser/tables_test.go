package parser

import (
	"errors"
	"testing"

	"github.com/quarzz/appodeal/pkg/csvascii/models"
	"gotest.tools/v3/assert"
)

func mustMoney(t *testing.T, s string) models.Money {
	t.Helper()
	m, err := models.ParseMoney(s)
	if err != nil {
		t.Fatalf("ParseMoney(%q) failed: %v", s, err)
	}
	return m
}

func TestReadTable(t *testing.T) {
	rows := []RawRow{
		Strings("int", "string", "money"),
		Strings("123", "a00000bc def hhhhhhhhhhh", "1000.33"),
		Strings("-9", "xxxxxxxxxxxxxxxxx", "999999.00"),
		Strings("0", "", "-1.03"),
	}

	table, err := ReadTable(rows)
	assert.NilError(t, err)

	expected := models.NewTable([]models.Row{
		{models.NewInteger(123), models.ParseText("a00000bc def hhhhhhhhhhh"), mustMoney(t, "1000.33")},
		{models.NewInteger(-9), models.ParseText("xxxxxxxxxxxxxxxxx"), mustMoney(t, "999999.00")},
		{models.NewInteger(0), models.ParseText(""), mustMoney(t, "-1.03")},
	})
	assert.Assert(t, table.Equal(expected), "got %v", table.Rows())
}

func TestReadTableEmpty(t *testing.T) {
	tests := []struct {
		name string
		rows []RawRow
	}{
		{"no input", nil},
		{"header only", []RawRow{Strings("int", "string", "money")}},
		{"empty header", []RawRow{{}}},
	}

	for _, tt := range tests {
		table, err := ReadTable(tt.rows)
		if err != nil {
			t.Errorf("%s: ReadTable returned error: %v", tt.name, err)
			continue
		}
		if !table.Empty() {
			t.Errorf("%s: expected empty table, got %d rows", tt.name, table.Len())
		}
	}
}

func TestReadTableBlankLineInSingleColumn(t *testing.T) {
	rows := []RawRow{
		Strings("string"),
		{},
		Strings("asdf"),
	}

	table, err := ReadTable(rows)
	assert.NilError(t, err)

	expected := models.NewTable([]models.Row{
		{models.ParseText("")},
		{models.ParseText("asdf")},
	})
	assert.Assert(t, table.Equal(expected))
}

func TestReadTableAbsentFieldsReadAsEmpty(t *testing.T) {
	table, err := ReadTable([]RawRow{
		Strings("string", "int"),
		{nil, Strings("4")[0]},
	})
	assert.NilError(t, err)
	assert.Equal(t, table.Cell(0, 0), models.Value(models.ParseText("")))

	_, err = ReadTable([]RawRow{
		Strings("string", "int"),
		{Strings("x")[0], nil},
	})
	assert.ErrorIs(t, err, ErrMalformedTable)
}

func TestReadTableMalformed(t *testing.T) {
	tests := []struct {
		name   string
		rows   []RawRow
		reason Reason
		line   int
		column int
	}{
		{
			name:   "unknown header type",
			rows:   []RawRow{Strings("int", "float"), Strings("1", "1.5")},
			reason: ReasonUnknownType,
			line:   1,
			column: 2,
		},
		{
			name:   "unknown header type without rows",
			rows:   []RawRow{Strings("date")},
			reason: ReasonUnknownType,
			line:   1,
			column: 1,
		},
		{
			name:   "too many fields",
			rows:   []RawRow{Strings("int", "string"), Strings("1", "a"), Strings("2", "b", "c")},
			reason: ReasonColumnCountMismatch,
			line:   3,
		},
		{
			name:   "too few fields",
			rows:   []RawRow{Strings("int", "string"), Strings("1")},
			reason: ReasonColumnCountMismatch,
			line:   2,
		},
		{
			name:   "blank line in multi-column table",
			rows:   []RawRow{Strings("int", "string"), {}},
			reason: ReasonColumnCountMismatch,
			line:   2,
		},
		{
			name:   "rows without header columns",
			rows:   []RawRow{{}, Strings("1")},
			reason: ReasonColumnCountMismatch,
			line:   2,
		},
		{
			name:   "invalid integer",
			rows:   []RawRow{Strings("string", "int"), Strings("a", "12x")},
			reason: ReasonInvalidValue,
			line:   2,
			column: 2,
		},
		{
			name:   "invalid money",
			rows:   []RawRow{Strings("money"), Strings("1.00"), Strings("1.5")},
			reason: ReasonInvalidValue,
			line:   3,
			column: 1,
		},
	}

	for _, tt := range tests {
		table, err := ReadTable(tt.rows)
		if table != nil {
			t.Errorf("%s: expected no table, got %d rows", tt.name, table.Len())
		}
		if !errors.Is(err, ErrMalformedTable) {
			t.Errorf("%s: error = %v, expected ErrMalformedTable", tt.name, err)
			continue
		}

		var mte *MalformedTableError
		if !errors.As(err, &mte) {
			t.Errorf("%s: error %T is not a *MalformedTableError", tt.name, err)
			continue
		}
		if mte.Reason != tt.reason || mte.Line != tt.line || mte.Column != tt.column {
			t.Errorf("%s: got (%s, row %d, column %d), expected (%s, row %d, column %d)",
				tt.name, mte.Reason, mte.Line, mte.Column, tt.reason, tt.line, tt.column)
		}
	}
}

func TestReadTableDoesNotLeakValueErrors(t *testing.T) {
	_, err := ReadTable([]RawRow{Strings("int"), Strings("x")})
	assert.ErrorIs(t, err, ErrMalformedTable)
	assert.Assert(t, !errors.Is(err, models.ErrInvalidValue))
	assert.ErrorContains(t, err, "row 2, column 1")
}
