package driver

import (
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/host"
	"src.plugview.dev/pkg/subscription"
	"src.plugview.dev/pkg/task"
	"src.plugview.dev/pkg/theme"
	"src.plugview.dev/pkg/widget"
)

// Application is implemented by editors driven by a Driver. All methods are
// called from the goroutine running the driver.
type Application interface {
	// Title returns the window title.
	Title() string
	// Update handles a message and returns the task to run for it.
	Update(msg any) task.Task
	// View returns the user interface for the current state.
	View() widget.Widget
	// Theme returns the current theme.
	Theme() theme.Theme
	// Style returns the window-level appearance for the given theme.
	Style(th theme.Theme) theme.Appearance
	// Subscription returns the event sources the application listens to.
	// It may also register window callbacks in subs; only the callbacks
	// registered by the latest call are used.
	Subscription(subs *WindowSubs) subscription.Subscription
	// ScalePolicy returns the scale policy of the window.
	ScalePolicy() host.ScalePolicy
}

// Boot creates the application and its startup task.
type Boot func() (Application, task.Task)

// Defaults can be embedded into implementations of Application to provide
// default implementations of the methods other than Update, View and Theme.
type Defaults struct{}

func (Defaults) Title() string                                      { return "plugview" }
func (Defaults) Style(th theme.Theme) theme.Appearance              { return theme.DefaultStyle(th) }
func (Defaults) Subscription(*WindowSubs) subscription.Subscription { return subscription.None() }
func (Defaults) ScalePolicy() host.ScalePolicy                      { return host.SystemScale() }

// KeyFilter can be implemented by an Application to override
// Settings.IgnoreNonModifierKeys. The setting is overridden when ok is true.
type KeyFilter interface {
	IgnoreNonModifierKeys() (ignore, ok bool)
}

// WindowSubs holds optional window callbacks. Each callback returns a message
// to deliver to the update function, or nil.
type WindowSubs struct {
	// OnFrame is called on every frame tick.
	OnFrame func() any
	// OnWindowWillClose is called when the host is about to close the window.
	OnWindowWillClose func() any
	// OnResize is called with the new logical size when the window is resized.
	OnResize func(geom.Size) any
}
