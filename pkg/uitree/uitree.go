// Package uitree implements the retained user interface: a widget tree
// together with its state and layout.
package uitree

import (
	"src.plugview.dev/pkg/clipboard"
	"src.plugview.dev/pkg/event"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/theme"
	"src.plugview.dev/pkg/widget"
)

// State is the condition of a UserInterface after Update.
type State uint8

const (
	// Updated means the user interface reflects the application state.
	Updated State = iota
	// Outdated means some widget requested a rebuild.
	Outdated
)

func (s State) String() string {
	if s == Outdated {
		return "outdated"
	}
	return "updated"
}

// Cache is the state salvaged from a UserInterface to build the next one.
// The zero value is an empty cache.
type Cache struct {
	state *widget.Tree
}

// UserInterface is a built widget tree.
type UserInterface struct {
	root  widget.Widget
	state *widget.Tree
	base  *widget.Node
	size  geom.Size
}

// Build lays out root within size, reusing the state in cache.
func Build(root widget.Widget, size geom.Size, cache Cache, r widget.Renderer) *UserInterface {
	state := cache.state
	if state == nil {
		state = widget.NewTree(root)
	} else {
		state.Diff(root)
	}
	ui := &UserInterface{root: root, state: state, size: size}
	ui.layout(r)
	return ui
}

func (ui *UserInterface) layout(r widget.Renderer) {
	ui.base = ui.root.Layout(ui.state, r, widget.Loose(ui.size))
}

// Size returns the logical size ui was laid out in.
func (ui *UserInterface) Size() geom.Size { return ui.size }

// Update delivers events to the widgets in order. Messages published by
// widgets are appended to messages. It returns the state of ui and one
// status per event.
func (ui *UserInterface) Update(events []event.Event, cursor event.Cursor, r widget.Renderer, cb clipboard.Clipboard, messages *[]any) (State, []event.Status) {
	shell := widget.NewShell(messages)
	statuses := make([]event.Status, len(events))
	for i, ev := range events {
		shell.Reset()
		widget.UpdateOn(ui.root, ui.state, ev, ui.base, cursor, r, cb, shell)
		if shell.IsLayoutInvalid() {
			ui.layout(r)
		}
		statuses[i] = shell.Status()
	}
	if shell.AreWidgetsInvalid() {
		return Outdated, statuses
	}
	return Updated, statuses
}

// Draw clears r and draws ui into it.
func (ui *UserInterface) Draw(r widget.Renderer, th theme.Theme, style theme.Style, cursor event.Cursor) {
	r.Clear()
	ui.root.Draw(ui.state, r, th, style, ui.base, cursor)
}

// Relayout lays ui out again at a new size and returns it.
func (ui *UserInterface) Relayout(size geom.Size, r widget.Renderer) *UserInterface {
	ui.size = size
	ui.layout(r)
	return ui
}

// Operate runs one pass of op over ui.
func (ui *UserInterface) Operate(r widget.Renderer, op widget.Operation) {
	widget.OperateOn(ui.root, ui.state, ui.base, r, op)
}

// IntoCache retires ui and returns its cache. ui must not be used
// afterwards.
func (ui *UserInterface) IntoCache() Cache {
	c := Cache{ui.state}
	*ui = UserInterface{}
	return c
}
