package output

import (
	"strings"
	"unicode/utf8"

	"github.com/quarzz/appodeal/pkg/csvascii/models"
)

// align pads s on one side to the given width.
type align func(s string, width int) string

// asciiCell is the display form of one cell: its unpadded lines and the
// side it is justified to.
type asciiCell struct {
	lines   []string
	justify align
}

// width returns the length of the longest line.
func (c asciiCell) width() int {
	w := 0
	for _, l := range c.lines {
		if n := utf8.RuneCountInString(l); n > w {
			w = n
		}
	}
	return w
}

func (c asciiCell) height() int { return len(c.lines) }

// line returns line i padded to width, or blank padding past the last line.
func (c asciiCell) line(i, width int) string {
	s := ""
	if i >= 0 && i < len(c.lines) {
		s = c.lines[i]
	}
	return c.justify(s, width)
}

// asciiCells builds the display form for each kind of value.
type asciiCells struct{}

// Integers print in decimal, right-justified.
func (asciiCells) VisitInteger(v models.Integer) asciiCell {
	return asciiCell{lines: []string{v.String()}, justify: padLeft}
}

// Text wraps at ASCII whitespace, one word per line, left-justified.
// Other Unicode spaces, such as U+00A0, stay inside their word.
func (asciiCells) VisitText(v models.Text) asciiCell {
	words := strings.FieldsFunc(v.String(), isASCIISpace)
	if len(words) == 0 {
		words = []string{""}
	}
	return asciiCell{lines: words, justify: padRight}
}

// Money groups thousands with spaces, right-justified.
func (asciiCells) VisitMoney(v models.Money) asciiCell {
	return asciiCell{lines: []string{formatMoney(v)}, justify: padLeft}
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func newASCIICell(v models.Value) asciiCell {
	return models.Visit[asciiCell](v, asciiCells{})
}

// formatMoney renders e.g. -1234567.05 as "-1 234 567.05".
func formatMoney(v models.Money) string {
	negative, whole, cents := v.Split()

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(whole))
	b.WriteByte('.')
	b.WriteString(cents)
	return b.String()
}

// groupThousands inserts a space every three digits from the right.
func groupThousands(digits string) string {
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(' ')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// padLeft pads a string on the left to reach the specified width.
func padLeft(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n) + s
}

// padRight pads a string on the right to reach the specified width.
func padRight(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
