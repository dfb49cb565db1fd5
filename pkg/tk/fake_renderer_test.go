package tk_test

import (
	"fmt"

	"src.plugview.dev/pkg/geom"
)

// fakeRenderer measures text at half the text size per rune and records
// every draw call.
type fakeRenderer struct {
	calls []string
}

func (r *fakeRenderer) Clear() { r.calls = nil }

func (r *fakeRenderer) FillQuad(b geom.Rectangle, _ geom.Color) {
	r.calls = append(r.calls, fmt.Sprintf("quad %v", b))
}

func (r *fakeRenderer) FillTriangle(a, b, c geom.Point, _ geom.Color) {
	r.calls = append(r.calls, fmt.Sprintf("triangle %v %v %v", a, b, c))
}

func (r *fakeRenderer) FillText(text string, at geom.Point, _ float32, _ geom.Color) {
	r.calls = append(r.calls, fmt.Sprintf("text %q at %v", text, at))
}

func (r *fakeRenderer) MeasureText(text string, size float32) geom.Size {
	return geom.Sz(float32(len([]rune(text)))*size/2, size)
}
