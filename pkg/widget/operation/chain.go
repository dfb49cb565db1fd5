package operation

import (
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/widget"
)

// Then returns an operation that runs op and, if it finishes with a value,
// chains into the operation returned by f for that value. If f returns nil,
// the operation finishes with None. Chains produced by op itself are
// followed before f is consulted.
func Then(op widget.Operation, f func(any) widget.Operation) widget.Operation {
	return &then{op, f}
}

type then struct {
	op widget.Operation
	f  func(any) widget.Operation
}

func (t *then) Container(id widget.ID, bounds geom.Rectangle, children func(widget.Operation)) {
	t.op.Container(id, bounds, children)
}

func (t *then) Focusable(id widget.ID, bounds geom.Rectangle, st widget.Focusable) {
	t.op.Focusable(id, bounds, st)
}

func (t *then) Custom(id widget.ID, bounds geom.Rectangle, st any) {
	t.op.Custom(id, bounds, st)
}

func (t *then) Finish() widget.Outcome {
	o := t.op.Finish()
	if next := o.Next(); next != nil {
		return widget.Chain(Then(next, t.f))
	}
	if v, ok := o.Value(); ok {
		if next := t.f(v); next != nil {
			return widget.Chain(next)
		}
	}
	return widget.None()
}

// Sequence returns an operation that runs each of ops as a separate pass, in
// order. It finishes with the outcome of the last one.
func Sequence(ops ...widget.Operation) widget.Operation {
	if len(ops) == 0 {
		return nop{}
	}
	return &sequence{ops}
}

type sequence struct{ ops []widget.Operation }

func (s *sequence) Container(id widget.ID, bounds geom.Rectangle, children func(widget.Operation)) {
	s.ops[0].Container(id, bounds, children)
}

func (s *sequence) Focusable(id widget.ID, bounds geom.Rectangle, st widget.Focusable) {
	s.ops[0].Focusable(id, bounds, st)
}

func (s *sequence) Custom(id widget.ID, bounds geom.Rectangle, st any) {
	s.ops[0].Custom(id, bounds, st)
}

func (s *sequence) Finish() widget.Outcome {
	o := s.ops[0].Finish()
	rest := s.ops[1:]
	if next := o.Next(); next != nil {
		return widget.Chain(Sequence(append([]widget.Operation{next}, rest...)...))
	}
	if len(rest) > 0 {
		return widget.Chain(Sequence(rest...))
	}
	return o
}

type nop struct{ widget.Traverse }

func (nop) Container(widget.ID, geom.Rectangle, func(widget.Operation)) {}
