// Package action defines the side-effecting requests interpreted by the
// driver.
//
// Actions are produced by tasks. Each action is consumed exactly once.
// Actions that expect an answer carry a oneshot.Promise that the driver
// resolves.
package action

import (
	"src.plugview.dev/pkg/clipboard"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/oneshot"
	"src.plugview.dev/pkg/system"
	"src.plugview.dev/pkg/widget"
)

// Action is a request to the driver.
type Action interface {
	isAction()
}

// Output delivers a message to the update function.
type Output struct{ Message any }

// ClipboardRead reads a clipboard and resolves Reply with its contents.
type ClipboardRead struct {
	Target clipboard.Kind
	Reply  *oneshot.Promise[clipboard.Contents]
}

// ClipboardWrite replaces the contents of a clipboard.
type ClipboardWrite struct {
	Target   clipboard.Kind
	Contents string
}

// WindowOp is an operation on the host window.
type WindowOp uint8

// Window operations. Only Close, Resize and GainFocus are carried out; the
// others are accepted and ignored since the host owns the window.
const (
	Close WindowOp = iota
	Resize
	GainFocus
	Minimize
	Maximize
	ChangeTitle
)

var windowOpNames = [...]string{"close", "resize", "gain-focus", "minimize", "maximize", "change-title"}

func (op WindowOp) String() string {
	if int(op) < len(windowOpNames) {
		return windowOpNames[op]
	}
	return "unknown"
}

// Window requests an operation on the host window. Size is used by Resize
// and is in logical pixels.
type Window struct {
	Op   WindowOp
	Size geom.Size
}

// SystemInformation queries information about the system and resolves Reply
// with it.
type SystemInformation struct {
	Reply *oneshot.Promise[system.Information]
}

// Widget runs an operation on the widget tree, following its chain until it
// finishes. Reply, if not nil, is resolved with the value of the final
// outcome, or nil if it has none.
type Widget struct {
	Operation widget.Operation
	Reply     *oneshot.Promise[any]
}

// LoadFont loads a font and resolves Reply with the result.
type LoadFont struct {
	Bytes []byte
	Reply *oneshot.Promise[error]
}

// Exit requests the host to close the window.
type Exit struct{}

// Reload requests a reload of the application. It is not supported by the
// driver.
type Reload struct{}

func (Output) isAction()            {}
func (ClipboardRead) isAction()     {}
func (ClipboardWrite) isAction()    {}
func (Window) isAction()            {}
func (SystemInformation) isAction() {}
func (Widget) isAction()            {}
func (LoadFont) isAction()          {}
func (Exit) isAction()              {}
func (Reload) isAction()            {}

// Kind returns a short name for the type of a, for use in logs and metrics.
func Kind(a Action) string {
	switch a.(type) {
	case Output:
		return "output"
	case ClipboardRead:
		return "clipboard-read"
	case ClipboardWrite:
		return "clipboard-write"
	case Window:
		return "window"
	case SystemInformation:
		return "system-information"
	case Widget:
		return "widget"
	case LoadFont:
		return "load-font"
	case Exit:
		return "exit"
	case Reload:
		return "reload"
	}
	return "unknown"
}
