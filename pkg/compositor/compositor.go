// Package compositor defines the presentation backend the driver draws
// frames with.
package compositor

import (
	"errors"

	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/system"
	"src.plugview.dev/pkg/widget"
)

// Errors returned by Compositor.Present.
var (
	// ErrOutOfMemory means presentation resources are exhausted. It is fatal.
	ErrOutOfMemory = errors.New("surface: out of memory")
	ErrTimeout     = errors.New("surface: timeout")
	ErrOutdated    = errors.New("surface: outdated")
	ErrLost        = errors.New("surface: lost")
)

// IsFatal reports whether err means presentation cannot continue.
func IsFatal(err error) bool {
	return errors.Is(err, ErrOutOfMemory)
}

// Surface is a presentation target owned by a Compositor.
type Surface interface {
	Size() geom.PhysicalSize
}

// Renderer is a widget.Renderer that a Compositor can present.
type Renderer interface {
	widget.Renderer
}

// Compositor owns the presentation resources of a window.
type Compositor interface {
	// CreateSurface creates a surface for the window with the given handle.
	CreateSurface(window any, size geom.PhysicalSize) Surface
	// ConfigureSurface resizes s.
	ConfigureSurface(s Surface, size geom.PhysicalSize)
	CreateRenderer() Renderer
	// Present shows what was drawn into r on s. Errors for which IsFatal is
	// false are transient.
	Present(r Renderer, s Surface, vp geom.Viewport, background geom.Color) error
	// LoadFont makes a font available to renderers.
	LoadFont(data []byte) error
	// Information describes the backend.
	Information() system.Graphics
}
