// Package geom contains the geometric and color primitives shared by the
// driver, the widget toolkit and the compositor.
//
// Logical quantities are float32 and measured in logical pixels; physical
// quantities are uint32 device pixels.
package geom

import "fmt"

// Size is a logical size.
type Size struct {
	Width, Height float32
}

// Sz is a shorthand for constructing a Size.
func Sz(w, h float32) Size { return Size{w, h} }

// IsZero reports whether either dimension is zero or negative.
func (s Size) IsZero() bool { return s.Width <= 0 || s.Height <= 0 }

// Max returns the component-wise maximum of s and o.
func (s Size) Max(o Size) Size { return Size{max(s.Width, o.Width), max(s.Height, o.Height)} }

// Min returns the component-wise minimum of s and o.
func (s Size) Min(o Size) Size { return Size{min(s.Width, o.Width), min(s.Height, o.Height)} }

func (s Size) String() string { return fmt.Sprintf("%gx%g", s.Width, s.Height) }

// PhysicalSize is a size in device pixels.
type PhysicalSize struct {
	Width, Height uint32
}

// IsZero reports whether either dimension is zero, which is the case for a
// minimized window.
func (s PhysicalSize) IsZero() bool { return s.Width == 0 || s.Height == 0 }

func (s PhysicalSize) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// Point is a logical position.
type Point struct {
	X, Y float32
}

// Pt is a shorthand for constructing a Point.
func Pt(x, y float32) Point { return Point{x, y} }

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Vector { return Vector{p.X - o.X, p.Y - o.Y} }

// Add translates p by v.
func (p Point) Add(v Vector) Point { return Point{p.X + v.X, p.Y + v.Y} }

// Vector is a logical displacement.
type Vector struct {
	X, Y float32
}

// Cross returns the z component of the cross product of v and o.
func (v Vector) Cross(o Vector) float32 { return v.X*o.Y - v.Y*o.X }

// Rectangle is an axis-aligned logical rectangle.
type Rectangle struct {
	X, Y, Width, Height float32
}

// Rect is a shorthand for constructing a Rectangle.
func Rect(x, y, w, h float32) Rectangle { return Rectangle{x, y, w, h} }

// RectFromSize returns a rectangle of the given size at the origin.
func RectFromSize(s Size) Rectangle { return Rectangle{0, 0, s.Width, s.Height} }

// Size returns the size of r.
func (r Rectangle) Size() Size { return Size{r.Width, r.Height} }

// Position returns the top-left corner of r.
func (r Rectangle) Position() Point { return Point{r.X, r.Y} }

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r Rectangle) Contains(p Point) bool {
	return r.X <= p.X && p.X < r.X+r.Width && r.Y <= p.Y && p.Y < r.Y+r.Height
}

// Translate moves r by v.
func (r Rectangle) Translate(v Vector) Rectangle {
	return Rectangle{r.X + v.X, r.Y + v.Y, r.Width, r.Height}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

// RGB8 constructs an opaque Color from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// Viewport is the presentation area of a window: a physical size and the
// scale factor from logical to physical pixels.
type Viewport struct {
	Physical PhysicalSize
	Scale    float64
}

// ViewportWithPhysicalSize constructs a Viewport.
func ViewportWithPhysicalSize(s PhysicalSize, scale float64) Viewport {
	if scale <= 0 {
		scale = 1
	}
	return Viewport{s, scale}
}

// Logical returns the logical size of the viewport.
func (v Viewport) Logical() Size {
	return Size{
		float32(float64(v.Physical.Width) / v.Scale),
		float32(float64(v.Physical.Height) / v.Scale),
	}
}

// PhysicalFromLogical converts a logical size to device pixels, truncating.
func PhysicalFromLogical(s Size, scale float64) PhysicalSize {
	return PhysicalSize{
		uint32(max(0, float64(s.Width)*scale)),
		uint32(max(0, float64(s.Height)*scale)),
	}
}
