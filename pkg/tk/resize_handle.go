package tk

import (
	"src.plugview.dev/pkg/clipboard"
	"src.plugview.dev/pkg/event"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/logutil"
	"src.plugview.dev/pkg/theme"
	"src.plugview.dev/pkg/widget"
)

var logger = logutil.GetLogger("[tk] ")

// Defaults of ResizeHandle.
var (
	DefaultHandleSize  float32 = 20
	DefaultHandleColor         = geom.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.5}
	DefaultMinSize             = geom.Sz(400, 300)
)

// ResizeHandle is a triangular handle, normally pinned to the bottom-right
// corner of the window, that lets the user resize the window by dragging it.
// It publishes OnResize with the new logical window size while dragging.
//
// It should be the topmost layer so that it sees pointer events first.
type ResizeHandle struct {
	// Current is the current logical window size.
	Current  geom.Size
	OnResize func(geom.Size) any
	// Size is the side length of the handle.
	Size    float32
	Color   geom.Color
	MinSize geom.Size
}

// NewResizeHandle returns a ResizeHandle with the default size, color and
// minimum window size.
func NewResizeHandle(current geom.Size, onResize func(geom.Size) any) ResizeHandle {
	return ResizeHandle{
		Current:  current,
		OnResize: onResize,
		Size:     DefaultHandleSize,
		Color:    DefaultHandleColor,
		MinSize:  DefaultMinSize,
	}
}

type resizeState struct {
	dragging    bool
	lastCursor  geom.Point
	accumulated geom.Size
	lastEmitted geom.Size
}

const resizeHandleTag widget.Tag = "tk.ResizeHandle"

func (h ResizeHandle) Tag() widget.Tag { return resizeHandleTag }
func (h ResizeHandle) NewState() any   { return &resizeState{} }

func (h ResizeHandle) Layout(_ *widget.Tree, _ widget.Renderer, lim widget.Limits) *widget.Node {
	return widget.NewNode(lim.Resolve(geom.Sz(h.Size, h.Size)))
}

func (h ResizeHandle) Draw(_ *widget.Tree, r widget.Renderer, _ theme.Theme, _ theme.Style, node *widget.Node, _ event.Cursor) {
	b := node.Bounds
	r.FillTriangle(
		geom.Pt(b.X, b.Y+b.Height),
		geom.Pt(b.X+b.Width, b.Y+b.Height),
		geom.Pt(b.X+b.Width, b.Y),
		h.Color)
}

func (h ResizeHandle) Update(t *widget.Tree, ev event.Event, node *widget.Node, cursor event.Cursor, _ widget.Renderer, _ clipboard.Clipboard, shell *widget.Shell) {
	st := t.State.(*resizeState)
	switch ev := ev.(type) {
	case event.ButtonPressed:
		if ev.Button != event.ButtonLeft {
			return
		}
		if p, ok := cursor.Position(); ok && inTriangle(node.Bounds, p) {
			*st = resizeState{
				dragging:    true,
				lastCursor:  p,
				accumulated: h.Current,
				lastEmitted: h.Current,
			}
			shell.CaptureEvent()
		}
	case event.ButtonReleased:
		if ev.Button == event.ButtonLeft && st.dragging {
			st.dragging = false
			shell.CaptureEvent()
		}
	case event.CursorMoved:
		if !st.dragging {
			return
		}
		// Deltas are taken from the previous cursor position, since the
		// window and thus the coordinate space changes while dragging.
		delta := ev.Position.Sub(st.lastCursor)
		st.lastCursor = ev.Position
		st.accumulated = geom.Sz(
			max(st.accumulated.Width+delta.X, h.MinSize.Width),
			max(st.accumulated.Height+delta.Y, h.MinSize.Height))
		shell.CaptureEvent()
		if st.accumulated != st.lastEmitted {
			st.lastEmitted = st.accumulated
			logger.Printf("resize to %v (cursor %v, delta %v)", st.accumulated, ev.Position, delta)
			if h.OnResize != nil {
				shell.Publish(h.OnResize(st.accumulated))
			}
		}
	}
}

// inTriangle reports whether p lies in the right triangle formed by the
// bottom-left, bottom-right and top-right corners of b, edges included.
func inTriangle(b geom.Rectangle, p geom.Point) bool {
	if b.Width <= 0 || b.Height <= 0 {
		return false
	}
	if p.X < b.X || p.X > b.X+b.Width || p.Y < b.Y || p.Y > b.Y+b.Height {
		return false
	}
	// On or below the diagonal from the bottom-left to the top-right corner.
	return (p.X-b.X)/b.Width+(p.Y-b.Y)/b.Height >= 1
}
