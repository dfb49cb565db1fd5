package widget

import "src.plugview.dev/pkg/geom"

// ID identifies a widget for operations. The empty ID matches nothing.
type ID string

// Operation is a programmatic pass over the widget tree, such as moving the
// focus. Widgets report themselves to the operation through the methods
// matching their capabilities.
type Operation interface {
	// Container is called by widgets with children. Implementations decide
	// whether to descend by calling children with the operation to continue
	// with.
	Container(id ID, bounds geom.Rectangle, children func(Operation))
	// Focusable is called by widgets that can hold the focus.
	Focusable(id ID, bounds geom.Rectangle, state Focusable)
	// Custom is called by widgets exposing other state.
	Custom(id ID, bounds geom.Rectangle, state any)
	// Finish returns the outcome of the pass.
	Finish() Outcome
}

// Focusable is the state of a widget that can hold the focus.
type Focusable interface {
	IsFocused() bool
	Focus()
	Unfocus()
}

// Traverse is an embeddable partial Operation that descends into every
// container and ignores all state. Types embedding it must still implement
// Container themselves so that the children see the outer operation; see
// Descend.
type Traverse struct{}

func (Traverse) Focusable(ID, geom.Rectangle, Focusable) {}
func (Traverse) Custom(ID, geom.Rectangle, any)          {}
func (Traverse) Finish() Outcome                         { return None() }

// Descend is the typical body of Operation.Container.
func Descend(op Operation, children func(Operation)) { children(op) }

type outcomeKind uint8

const (
	outcomeNone outcomeKind = iota
	outcomeSome
	outcomeChain
)

// Outcome is the result of an Operation: nothing, a value, or another
// operation to run as a further pass.
type Outcome struct {
	kind  outcomeKind
	value any
	next  Operation
}

// None is the Outcome of an operation without a result.
func None() Outcome { return Outcome{} }

// Some is the Outcome of an operation with a result.
func Some(v any) Outcome { return Outcome{kind: outcomeSome, value: v} }

// Chain is the Outcome of an operation that continues with next.
func Chain(next Operation) Outcome { return Outcome{kind: outcomeChain, next: next} }

// Value returns the result of a Some outcome.
func (o Outcome) Value() (any, bool) { return o.value, o.kind == outcomeSome }

// Next returns the continuation of a Chain outcome, or nil.
func (o Outcome) Next() Operation {
	if o.kind == outcomeChain {
		return o.next
	}
	return nil
}

// IsTerminal reports whether o does not chain into another operation.
func (o Outcome) IsTerminal() bool { return o.kind != outcomeChain }

func (o Outcome) String() string {
	switch o.kind {
	case outcomeSome:
		return "some"
	case outcomeChain:
		return "chain"
	}
	return "none"
}
