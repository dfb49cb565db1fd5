// Package host describes the boundary between the driver and the window
// system that owns the editor window, such as a plugin host.
//
// The host delivers raw events (this package's Event types), frame and
// present notifications, and a will-close notification; for raw events that
// need an acknowledgement it expects exactly one synchronous Status.
package host

import (
	"fmt"

	"src.plugview.dev/pkg/event"
	"src.plugview.dev/pkg/geom"
)

// Event is a raw host event.
type Event interface {
	isHostEvent()
}

// MouseKind discriminates MouseEvent.
type MouseKind uint8

// Kinds of MouseEvent.
const (
	MouseMoved MouseKind = iota
	MouseEntered
	MouseLeft
	MouseDown
	MouseUp
	MouseWheel
)

// MouseEvent is a raw pointer event. Positions are logical.
type MouseEvent struct {
	Kind      MouseKind
	Position  geom.Point
	Button    event.Button
	Delta     geom.Vector
	Lines     bool
	Modifiers event.Modifiers
}

// KeyboardEvent is a raw keyboard event.
type KeyboardEvent struct {
	Key       event.Key
	Pressed   bool
	Repeat    bool
	Text      string
	Modifiers event.Modifiers
}

// WindowKind discriminates WindowEvent.
type WindowKind uint8

// Kinds of WindowEvent.
const (
	WindowResized WindowKind = iota
	WindowFocused
	WindowUnfocused
)

// WindowEvent is a raw window event. Info is only meaningful for
// WindowResized.
type WindowEvent struct {
	Kind WindowKind
	Info WindowInfo
}

func (MouseEvent) isHostEvent()    {}
func (KeyboardEvent) isHostEvent() {}
func (WindowEvent) isHostEvent()   {}

// WindowInfo describes the window geometry reported by the host.
type WindowInfo struct {
	Physical geom.PhysicalSize
	// Scale is the system scale factor the host reports.
	Scale float64
}

// Logical returns the logical size of the window at the reported scale.
func (w WindowInfo) Logical() geom.Size {
	return geom.ViewportWithPhysicalSize(w.Physical, w.Scale).Logical()
}

// Status is the acknowledgement returned to the host for a raw event.
type Status uint8

const (
	// Ignored tells the host it may handle the event itself, for example
	// forward a key press to the DAW.
	Ignored Status = iota
	// Captured tells the host the editor consumed the event.
	Captured
)

func (s Status) String() string {
	if s == Captured {
		return "captured"
	}
	return "ignored"
}

// ScalePolicy selects the logical-to-physical scale factor.
type ScalePolicy struct {
	// Factor is the fixed factor; zero means use the system factor.
	Factor float64
}

// SystemScale uses the scale factor the host reports.
func SystemScale() ScalePolicy { return ScalePolicy{} }

// FixedScale uses the given factor regardless of what the host reports.
func FixedScale(f float64) ScalePolicy { return ScalePolicy{Factor: f} }

// IsSystem reports whether p follows the system factor.
func (p ScalePolicy) IsSystem() bool { return p.Factor <= 0 }

// Resolve returns the effective factor given the system factor.
func (p ScalePolicy) Resolve(system float64) float64 {
	if p.IsSystem() {
		if system <= 0 {
			return 1
		}
		return system
	}
	return p.Factor
}

func (p ScalePolicy) String() string {
	if p.IsSystem() {
		return "system"
	}
	return fmt.Sprintf("fixed(%g)", p.Factor)
}

// Controller performs requests against the host window. Implementations must
// not block waiting for the driver; events caused by a request, such as the
// resize notification following Resize, are delivered later through the
// regular event path.
type Controller interface {
	Close() error
	Resize(size geom.Size) error
	Focus() error
}

// NopController is a Controller that does nothing.
type NopController struct{}

func (NopController) Close() error           { return nil }
func (NopController) Resize(geom.Size) error { return nil }
func (NopController) Focus() error           { return nil }
