package headless

import (
	"fmt"
	"unicode/utf8"

	"src.plugview.dev/pkg/geom"
)

// Renderer records draw commands as text. Text is measured as a monospace
// font whose advance is half the text size.
type Renderer struct {
	commands []string
}

func (r *Renderer) Clear() { r.commands = r.commands[:0] }

func (r *Renderer) FillQuad(b geom.Rectangle, c geom.Color) {
	r.record("quad %v %v", b, c)
}

func (r *Renderer) FillTriangle(a, b, c geom.Point, color geom.Color) {
	r.record("triangle %v %v %v %v", a, b, c, color)
}

func (r *Renderer) FillText(text string, at geom.Point, size float32, c geom.Color) {
	r.record("text %q %v %g %v", text, at, size, c)
}

func (r *Renderer) MeasureText(text string, size float32) geom.Size {
	return geom.Sz(float32(utf8.RuneCountInString(text))*size/2, size)
}

// Commands returns the commands recorded since the last Clear.
func (r *Renderer) Commands() []string {
	return append([]string(nil), r.commands...)
}

func (r *Renderer) record(format string, args ...any) {
	r.commands = append(r.commands, fmt.Sprintf(format, args...))
}
