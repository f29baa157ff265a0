// Package models defines the typed table data produced by the reader.
package models

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidValue indicates raw text does not match the grammar of its cell kind.
var ErrInvalidValue = errors.New("invalid value")

// Kind is the column type tag declared in a table header.
type Kind int

const (
	// KindInteger holds signed whole numbers ("int").
	KindInteger Kind = iota
	// KindText holds free text ("string").
	KindText
	// KindMoney holds fixed-point amounts with two decimals ("money").
	KindMoney
)

var kindNames = map[Kind]string{
	KindInteger: "int",
	KindText:    "string",
	KindMoney:   "money",
}

// String returns the header token for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a header token to its kind.
func ParseKind(token string) (Kind, bool) {
	for k, name := range kindNames {
		if name == token {
			return k, true
		}
	}
	return 0, false
}

// Value is a single typed cell. The set of implementations is closed:
// Integer, Text and Money.
type Value interface {
	// Kind returns the column type the value belongs to.
	Kind() Kind
	// String returns the canonical text form of the value.
	String() string

	cell()
}

var (
	integerPattern = regexp.MustCompile(`^-?\d+$`)
	moneyPattern   = regexp.MustCompile(`^(-?)(\d+)\.(\d{2})$`)
)

// Integer is a signed whole number of any size, kept as its decimal digits.
type Integer struct {
	negative bool
	digits   string
}

// NewInteger returns an Integer holding n.
func NewInteger(n int64) Integer { return integerFromDecimal(strconv.FormatInt(n, 10)) }

// ParseInteger parses an optional '-' followed by decimal digits.
func ParseInteger(s string) (Integer, error) {
	if !integerPattern.MatchString(s) {
		return Integer{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, s)
	}
	return integerFromDecimal(s), nil
}

// integerFromDecimal normalizes text matching -?\d+; zero is never negative.
func integerFromDecimal(s string) Integer {
	negative := strings.HasPrefix(s, "-")
	digits := trimLeadingZeros(strings.TrimPrefix(s, "-"))
	return Integer{negative: negative && digits != "0", digits: digits}
}

func trimLeadingZeros(digits string) string {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0"
	}
	return digits
}

// BigInt returns the numeric value.
func (i Integer) BigInt() *big.Int {
	n, _ := new(big.Int).SetString(i.String(), 10)
	return n
}

func (i Integer) Kind() Kind { return KindInteger }

func (i Integer) String() string {
	if i.negative {
		return "-" + i.digits
	}
	return i.digits
}

func (Integer) cell() {}

// Text is an arbitrary string, possibly empty.
type Text struct {
	v string
}

// ParseText wraps s unchanged. It never fails.
func ParseText(s string) Text { return Text{v: s} }

func (t Text) Kind() Kind     { return KindText }
func (t Text) String() string { return t.v }
func (Text) cell()            {}

// Money is a signed amount with exactly two decimals and no size limit.
type Money struct {
	negative bool
	whole    string // decimal digits without leading zeros
	cents    string // always two digits
}

// NewMoney returns a Money holding the given number of cents.
func NewMoney(cents int64) Money {
	s := strconv.FormatInt(cents, 10)
	negative := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	return newMoney(negative, digits[:len(digits)-2], digits[len(digits)-2:])
}

// ParseMoney parses text of the form -?\d+\.\d{2}. The fractional part is
// taken as exactly two digits, with no rounding.
func ParseMoney(s string) (Money, error) {
	m := moneyPattern.FindStringSubmatch(s)
	if m == nil {
		return Money{}, fmt.Errorf("%w: %q is not a money amount", ErrInvalidValue, s)
	}
	return newMoney(m[1] == "-", m[2], m[3]), nil
}

func newMoney(negative bool, whole, cents string) Money {
	whole = trimLeadingZeros(whole)
	if whole == "0" && cents == "00" {
		negative = false
	}
	return Money{negative: negative, whole: whole, cents: cents}
}

// Cents returns the amount in minor units.
func (m Money) Cents() *big.Int {
	n, _ := new(big.Int).SetString(m.sign()+m.whole+m.cents, 10)
	return n
}

// Split returns the sign, the whole-unit digits and the two cent digits.
func (m Money) Split() (negative bool, whole, cents string) {
	return m.negative, m.whole, m.cents
}

func (m Money) sign() string {
	if m.negative {
		return "-"
	}
	return ""
}

func (m Money) Kind() Kind { return KindMoney }

func (m Money) String() string {
	return m.sign() + m.whole + "." + m.cents
}

func (Money) cell() {}

// Parse builds a value of the given kind from raw text.
func Parse(kind Kind, s string) (Value, error) {
	switch kind {
	case KindInteger:
		return ParseInteger(s)
	case KindText:
		return ParseText(s), nil
	case KindMoney:
		return ParseMoney(s)
	}
	return nil, fmt.Errorf("%w: unknown kind %v", ErrInvalidValue, kind)
}
