package models

import "fmt"

// CellVisitor produces a T for each kind of cell value. Adding a kind to
// Value means adding a method here, so every visitor has to handle it.
type CellVisitor[T any] interface {
	VisitInteger(Integer) T
	VisitText(Text) T
	VisitMoney(Money) T
}

// Visit dispatches v to the visitor method matching its kind.
func Visit[T any](v Value, visitor CellVisitor[T]) T {
	switch v := v.(type) {
	case Integer:
		return visitor.VisitInteger(v)
	case Text:
		return visitor.VisitText(v)
	case Money:
		return visitor.VisitMoney(v)
	}
	// Value is sealed, so only a nil interface gets here.
	panic(fmt.Sprintf("models: cannot visit %T", v))
}
