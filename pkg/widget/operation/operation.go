// Package operation provides common widget operations.
package operation

import (
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/widget"
)

// Focus returns an operation that focuses the widget with the given ID and
// unfocuses every other focusable widget.
func Focus(id widget.ID) widget.Operation { return &focus{target: id} }

type focus struct {
	widget.Traverse
	target widget.ID
}

func (op *focus) Container(_ widget.ID, _ geom.Rectangle, children func(widget.Operation)) {
	widget.Descend(op, children)
}

func (op *focus) Focusable(id widget.ID, _ geom.Rectangle, st widget.Focusable) {
	if id != "" && id == op.target {
		st.Focus()
	} else {
		st.Unfocus()
	}
}

// Unfocus returns an operation that unfocuses every focusable widget.
func Unfocus() widget.Operation { return &focus{} }

// CountResult is the value produced by Count.
type CountResult struct {
	// Total is the number of focusable widgets.
	Total int
	// Focused is the index of the focused widget in traversal order, or -1.
	Focused int
}

// Count returns an operation that counts focusable widgets and finds the
// focused one. It finishes with Some(CountResult).
func Count() widget.Operation { return &count{res: CountResult{Focused: -1}} }

type count struct {
	widget.Traverse
	res CountResult
}

func (op *count) Container(_ widget.ID, _ geom.Rectangle, children func(widget.Operation)) {
	widget.Descend(op, children)
}

func (op *count) Focusable(_ widget.ID, _ geom.Rectangle, st widget.Focusable) {
	if st.IsFocused() {
		op.res.Focused = op.res.Total
	}
	op.res.Total++
}

func (op *count) Finish() widget.Outcome { return widget.Some(op.res) }

type focusIndex struct {
	widget.Traverse
	target, index int
}

func (op *focusIndex) Container(_ widget.ID, _ geom.Rectangle, children func(widget.Operation)) {
	widget.Descend(op, children)
}

func (op *focusIndex) Focusable(_ widget.ID, _ geom.Rectangle, st widget.Focusable) {
	if op.index == op.target {
		st.Focus()
	} else {
		st.Unfocus()
	}
	op.index++
}

// FocusNext returns an operation that moves the focus to the next focusable
// widget, wrapping around. It takes two passes: a Count followed by the
// focus change.
func FocusNext() widget.Operation {
	return Then(Count(), func(v any) widget.Operation {
		c := v.(CountResult)
		if c.Total == 0 {
			return nil
		}
		return &focusIndex{target: (c.Focused + 1) % c.Total}
	})
}

// FocusPrevious is like FocusNext but moves the focus backwards.
func FocusPrevious() widget.Operation {
	return Then(Count(), func(v any) widget.Operation {
		c := v.(CountResult)
		if c.Total == 0 {
			return nil
		}
		target := c.Focused - 1
		if c.Focused < 0 {
			target = c.Total - 1
		} else if target < 0 {
			target += c.Total
		}
		return &focusIndex{target: target}
	})
}

// FocusedID returns an operation that finishes with Some(ID) of the focused
// widget, or None if no widget with an ID is focused.
func FocusedID() widget.Operation { return &focusedID{} }

type focusedID struct {
	widget.Traverse
	id widget.ID
}

func (op *focusedID) Container(_ widget.ID, _ geom.Rectangle, children func(widget.Operation)) {
	widget.Descend(op, children)
}

func (op *focusedID) Focusable(id widget.ID, _ geom.Rectangle, st widget.Focusable) {
	if st.IsFocused() && id != "" {
		op.id = id
	}
}

func (op *focusedID) Finish() widget.Outcome {
	if op.id == "" {
		return widget.None()
	}
	return widget.Some(op.id)
}
