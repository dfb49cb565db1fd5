// Package widget defines the capability set of the nodes of a user interface
// and the per-widget state that survives rebuilds.
//
// A Widget is a declarative description; it is rebuilt every update cycle and
// must not hold mutable state of its own. Mutable state lives in a Tree,
// which is kept across rebuilds and reconciled against the new widgets by
// their structural position.
//
// Beyond the two methods of Widget, the capabilities of a widget are
// discovered through the optional interfaces Stateful, Container, Updater
// and Operator.
package widget

import (
	"src.plugview.dev/pkg/clipboard"
	"src.plugview.dev/pkg/event"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/theme"
)

// Widget is the minimal capability of a user interface node.
type Widget interface {
	// Layout computes the layout of the widget within the given limits. The
	// returned Node is positioned at the origin; parents move it.
	Layout(t *Tree, r Renderer, lim Limits) *Node
	// Draw draws the widget laid out as node.
	Draw(t *Tree, r Renderer, th theme.Theme, style theme.Style, node *Node, cursor event.Cursor)
}

// Stateful is implemented by widgets that keep private state in their Tree.
type Stateful interface {
	// Tag identifies the kind of state. A Tree whose tag differs from the
	// widget's is reset.
	Tag() Tag
	// NewState returns the initial state.
	NewState() any
}

// Container is implemented by widgets that have child widgets.
type Container interface {
	Children() []Widget
}

// Updater is implemented by widgets that react to events.
type Updater interface {
	Update(t *Tree, ev event.Event, node *Node, cursor event.Cursor, r Renderer, cb clipboard.Clipboard, shell *Shell)
}

// Operator is implemented by widgets that take part in operations.
type Operator interface {
	Operate(t *Tree, node *Node, r Renderer, op Operation)
}

// Tag identifies a kind of widget state.
type Tag string

// Renderer is the drawing surface widgets draw on and measure with.
type Renderer interface {
	// Clear discards everything drawn since the last Clear.
	Clear()
	FillQuad(bounds geom.Rectangle, color geom.Color)
	FillTriangle(a, b, c geom.Point, color geom.Color)
	FillText(text string, at geom.Point, size float32, color geom.Color)
	MeasureText(text string, size float32) geom.Size
}

// UpdateOn delivers ev to w if it is an Updater.
func UpdateOn(w Widget, t *Tree, ev event.Event, node *Node, cursor event.Cursor, r Renderer, cb clipboard.Clipboard, shell *Shell) {
	if u, ok := w.(Updater); ok {
		u.Update(t, ev, node, cursor, r, cb, shell)
	}
}

// OperateOn runs op on w if it is an Operator.
func OperateOn(w Widget, t *Tree, node *Node, r Renderer, op Operation) {
	if o, ok := w.(Operator); ok {
		o.Operate(t, node, r, op)
	}
}

// ChildrenOf returns the children of w if it is a Container.
func ChildrenOf(w Widget) []Widget {
	if c, ok := w.(Container); ok {
		return c.Children()
	}
	return nil
}
