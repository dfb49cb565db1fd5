package driver

import (
	"src.plugview.dev/pkg/event"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/host"
	"src.plugview.dev/pkg/theme"
)

// State is the state of the window as seen by the driver.
type State struct {
	title       string
	viewport    geom.Viewport
	systemScale float64
	fallback    host.ScalePolicy
	policy      host.ScalePolicy
	version     uint64
	theme       theme.Theme
	appearance  theme.Appearance
	cursor      event.Cursor
	modifiers   event.Modifiers
}

// NewState creates the State for app in a window of the given logical size.
//
// The effective scale factor is resolved from the scale policy of app, then
// from fallback, then from the factor reported by the host, which is 1 until
// the first resize.
func NewState(app Application, size geom.Size, fallback host.ScalePolicy) *State {
	s := &State{systemScale: 1, fallback: fallback, policy: app.ScalePolicy()}
	scale := s.resolve()
	s.viewport = geom.ViewportWithPhysicalSize(geom.PhysicalFromLogical(size, scale), scale)
	s.Synchronize(app)
	return s
}

// Title returns the window title.
func (s *State) Title() string { return s.title }

// Viewport returns the viewport of the window.
func (s *State) Viewport() geom.Viewport { return s.viewport }

// PhysicalSize returns the size of the window in device pixels.
func (s *State) PhysicalSize() geom.PhysicalSize { return s.viewport.Physical }

// LogicalSize returns the size of the window in logical pixels.
func (s *State) LogicalSize() geom.Size { return s.viewport.Logical() }

// ScaleFactor returns the effective scale factor.
func (s *State) ScaleFactor() float64 { return s.viewport.Scale }

// ViewportVersion returns a counter that changes whenever the physical size
// or the scale factor changes.
func (s *State) ViewportVersion() uint64 { return s.version }

// Theme returns the current theme.
func (s *State) Theme() theme.Theme { return s.theme }

// Background returns the background color.
func (s *State) Background() geom.Color { return s.appearance.Background }

// TextColor returns the default text color.
func (s *State) TextColor() geom.Color { return s.appearance.Text }

// Cursor returns the cursor.
func (s *State) Cursor() event.Cursor { return s.cursor }

// Modifiers returns the modifier state.
func (s *State) Modifiers() event.Modifiers { return s.modifiers }

// Update updates the state from a raw host event.
func (s *State) Update(ev host.Event) {
	switch ev := ev.(type) {
	case host.MouseEvent:
		switch ev.Kind {
		case host.MouseMoved:
			s.cursor = event.CursorAt(ev.Position)
		case host.MouseLeft:
			s.cursor = event.CursorUnavailable
		}
	case host.WindowEvent:
		if ev.Kind == host.WindowResized {
			s.systemScale = ev.Info.Scale
			s.setViewport(ev.Info.Physical, s.resolve())
		}
	}
}

// Synchronize updates the state from the application.
func (s *State) Synchronize(app Application) {
	s.title = app.Title()
	if policy := app.ScalePolicy(); policy != s.policy {
		s.policy = policy
		s.setViewport(s.viewport.Physical, s.resolve())
	}
	s.theme = app.Theme()
	s.appearance = app.Style(s.theme)
}

func (s *State) resolve() float64 {
	return s.policy.Resolve(s.fallback.Resolve(s.systemScale))
}

func (s *State) setViewport(physical geom.PhysicalSize, scale float64) {
	vp := geom.ViewportWithPhysicalSize(physical, scale)
	if vp != s.viewport {
		s.viewport = vp
		s.version++
	}
}
