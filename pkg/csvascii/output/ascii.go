// Package output renders typed tables as text.
package output

import (
	"io"
	"strings"

	"github.com/quarzz/appodeal/pkg/csvascii/models"
)

// EmptyTable is the rendering of a table without rows.
const EmptyTable = "++\n++\n"

// ToASCII renders the table as a bordered grid, one line per text line of
// each row, with a rule after every row. Every line has the same length.
func ToASCII(t *models.Table) string {
	if t.Empty() || t.ColumnCount() == 0 {
		return EmptyTable
	}

	cells := renderCells(t)
	widths, heights := dimensions(cells)

	var b strings.Builder
	writeTop(&b, widths)
	for i, row := range cells {
		for k := 0; k < heights[i]; k++ {
			b.WriteByte('|')
			for j, cell := range row {
				b.WriteString(cell.line(k, widths[j]))
				b.WriteByte('|')
			}
			b.WriteByte('\n')
		}
		writeRule(&b, widths)
	}
	return b.String()
}

// WriteASCII writes the ToASCII rendering of t to w.
func WriteASCII(w io.Writer, t *models.Table) error {
	_, err := io.WriteString(w, ToASCII(t))
	return err
}

func renderCells(t *models.Table) [][]asciiCell {
	cells := make([][]asciiCell, t.Len())
	for i := range cells {
		cells[i] = make([]asciiCell, t.ColumnCount())
		for j := range cells[i] {
			cells[i][j] = newASCIICell(t.Cell(i, j))
		}
	}
	return cells
}

// dimensions returns the widest line per column and the tallest cell per row.
func dimensions(cells [][]asciiCell) (widths, heights []int) {
	widths = make([]int, len(cells[0]))
	heights = make([]int, len(cells))
	for i, row := range cells {
		for j, cell := range row {
			widths[j] = max(widths[j], cell.width())
			heights[i] = max(heights[i], cell.height())
		}
	}
	return widths, heights
}

// writeTop writes the unbroken top border.
func writeTop(b *strings.Builder, widths []int) {
	total := len(widths) + 1
	for _, w := range widths {
		total += w
	}
	b.WriteByte('+')
	b.WriteString(strings.Repeat("-", total-2))
	b.WriteString("+\n")
}

// writeRule writes a border with a '+' at every column boundary.
func writeRule(b *strings.Builder, widths []int) {
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
}
