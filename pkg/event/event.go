// Package event defines the normalized input vocabulary that the driver
// dispatches to the widget tree.
//
// Host-native events are translated into this vocabulary by a
// host.Translator; widgets only ever see these types.
package event

import (
	"fmt"

	"src.plugview.dev/pkg/geom"
)

// Event is a normalized input event. It is implemented by the types in this
// package only.
type Event interface {
	isEvent()
}

// Status reports whether an event was consumed by the widget tree.
type Status uint8

const (
	// Ignored means no widget captured the event.
	Ignored Status = iota
	// Captured means some widget captured the event.
	Captured
)

func (s Status) String() string {
	if s == Captured {
		return "captured"
	}
	return "ignored"
}

// Merge returns Captured if either s or o is Captured.
func (s Status) Merge(o Status) Status {
	if s == Captured || o == Captured {
		return Captured
	}
	return Ignored
}

// Button is a mouse button.
type Button uint8

// Mouse buttons.
const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonBack
	ButtonForward
	ButtonOther
)

// Mouse events.
type (
	// CursorMoved reports the new cursor position in logical coordinates.
	CursorMoved struct{ Position geom.Point }
	// CursorEntered reports that the cursor entered the window.
	CursorEntered struct{}
	// CursorLeft reports that the cursor left the window.
	CursorLeft struct{}
	// ButtonPressed reports a mouse button press.
	ButtonPressed struct{ Button Button }
	// ButtonReleased reports a mouse button release.
	ButtonReleased struct{ Button Button }
	// WheelScrolled reports a scroll. Lines is true when Delta is measured in
	// lines rather than logical pixels.
	WheelScrolled struct {
		Delta geom.Vector
		Lines bool
	}
)

// Keyboard events.
type (
	// KeyPressed reports a key press. Text is the text the key produces, if
	// any.
	KeyPressed struct {
		Key       Key
		Modifiers Modifiers
		Text      string
		Repeat    bool
	}
	// KeyReleased reports a key release.
	KeyReleased struct {
		Key       Key
		Modifiers Modifiers
	}
	// ModifiersChanged reports a change of the modifier state.
	ModifiersChanged struct{ Modifiers Modifiers }
)

// Window events.
type (
	// WindowResized reports a new logical window size.
	WindowResized struct{ Size geom.Size }
	// WindowFocused reports that the window gained focus.
	WindowFocused struct{}
	// WindowUnfocused reports that the window lost focus.
	WindowUnfocused struct{}
)

func (CursorMoved) isEvent()      {}
func (CursorEntered) isEvent()    {}
func (CursorLeft) isEvent()       {}
func (ButtonPressed) isEvent()    {}
func (ButtonReleased) isEvent()   {}
func (WheelScrolled) isEvent()    {}
func (KeyPressed) isEvent()       {}
func (KeyReleased) isEvent()      {}
func (ModifiersChanged) isEvent() {}
func (WindowResized) isEvent()    {}
func (WindowFocused) isEvent()    {}
func (WindowUnfocused) isEvent()  {}

// Cursor is the state of the mouse cursor over the window.
type Cursor struct {
	position  geom.Point
	available bool
}

// CursorAt returns a Cursor positioned at p.
func CursorAt(p geom.Point) Cursor { return Cursor{p, true} }

// CursorUnavailable is the Cursor when the pointer is outside the window.
var CursorUnavailable = Cursor{}

// Position returns the cursor position and whether it is available.
func (c Cursor) Position() (geom.Point, bool) { return c.position, c.available }

// IsOver reports whether the cursor is available and inside r.
func (c Cursor) IsOver(r geom.Rectangle) bool {
	return c.available && r.Contains(c.position)
}

func (c Cursor) String() string {
	if !c.available {
		return "cursor(unavailable)"
	}
	return fmt.Sprintf("cursor(%g,%g)", c.position.X, c.position.Y)
}
