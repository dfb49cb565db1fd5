// Package tk provides a small set of reference widgets.
package tk

import (
	"src.plugview.dev/pkg/clipboard"
	"src.plugview.dev/pkg/event"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/theme"
	"src.plugview.dev/pkg/widget"
)

// DefaultTextSize is the text size used when none is given.
const DefaultTextSize = 16

// Column lays out its items top to bottom.
type Column struct {
	Items   []widget.Widget
	Spacing float32
	Padding float32
}

func (c Column) Children() []widget.Widget { return c.Items }

func (c Column) Layout(t *widget.Tree, r widget.Renderer, lim widget.Limits) *widget.Node {
	inner := lim.Shrink(geom.Sz(2*c.Padding, 2*c.Padding))
	nodes := make([]*widget.Node, len(c.Items))
	y := c.Padding
	var width float32
	for i, item := range c.Items {
		remaining := max(0, inner.Max.Height-(y-c.Padding))
		n := item.Layout(t.Children[i], r, widget.Loose(geom.Sz(inner.Max.Width, remaining)))
		n.Move(geom.Pt(c.Padding, y))
		nodes[i] = n
		y += n.Size().Height + c.Spacing
		width = max(width, n.Size().Width)
	}
	if len(c.Items) > 0 {
		y -= c.Spacing
	}
	size := lim.Resolve(geom.Sz(width+2*c.Padding, y+c.Padding))
	return widget.WithChildren(size, nodes)
}

func (c Column) Draw(t *widget.Tree, r widget.Renderer, th theme.Theme, style theme.Style, node *widget.Node, cursor event.Cursor) {
	for i, item := range c.Items {
		item.Draw(t.Children[i], r, th, style, node.Children[i], cursor)
	}
}

func (c Column) Update(t *widget.Tree, ev event.Event, node *widget.Node, cursor event.Cursor, r widget.Renderer, cb clipboard.Clipboard, shell *widget.Shell) {
	for i, item := range c.Items {
		widget.UpdateOn(item, t.Children[i], ev, node.Children[i], cursor, r, cb, shell)
	}
}

func (c Column) Operate(t *widget.Tree, node *widget.Node, r widget.Renderer, op widget.Operation) {
	operateChildren(c.Items, t, node, r, op)
}

// Stack lays out its layers on top of each other, each filling the available
// space. Later layers are on top and see events first; once a layer captures
// an event, the layers below see the cursor as unavailable.
type Stack struct {
	Layers []widget.Widget
}

func (s Stack) Children() []widget.Widget { return s.Layers }

func (s Stack) Layout(t *widget.Tree, r widget.Renderer, lim widget.Limits) *widget.Node {
	nodes := make([]*widget.Node, len(s.Layers))
	for i, layer := range s.Layers {
		nodes[i] = layer.Layout(t.Children[i], r, widget.Loose(lim.Max))
	}
	return widget.WithChildren(lim.Max, nodes)
}

func (s Stack) Draw(t *widget.Tree, r widget.Renderer, th theme.Theme, style theme.Style, node *widget.Node, cursor event.Cursor) {
	for i, layer := range s.Layers {
		layer.Draw(t.Children[i], r, th, style, node.Children[i], cursor)
	}
}

func (s Stack) Update(t *widget.Tree, ev event.Event, node *widget.Node, cursor event.Cursor, r widget.Renderer, cb clipboard.Clipboard, shell *widget.Shell) {
	for i := len(s.Layers) - 1; i >= 0; i-- {
		if shell.Status() == event.Captured {
			cursor = event.CursorUnavailable
		}
		widget.UpdateOn(s.Layers[i], t.Children[i], ev, node.Children[i], cursor, r, cb, shell)
	}
}

func (s Stack) Operate(t *widget.Tree, node *widget.Node, r widget.Renderer, op widget.Operation) {
	operateChildren(s.Layers, t, node, r, op)
}

// Corner selects where Pin places its content.
type Corner uint8

// Corners for Pin.
const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
	Center
)

// Pin fills the available space and places its content at a corner of it.
type Pin struct {
	Content widget.Widget
	At      Corner
}

func (p Pin) Children() []widget.Widget { return []widget.Widget{p.Content} }

func (p Pin) Layout(t *widget.Tree, r widget.Renderer, lim widget.Limits) *widget.Node {
	n := p.Content.Layout(t.Children[0], r, widget.Loose(lim.Max))
	outer, inner := lim.Max, n.Size()
	var x, y float32
	switch p.At {
	case TopRight:
		x = outer.Width - inner.Width
	case BottomLeft:
		y = outer.Height - inner.Height
	case BottomRight:
		x, y = outer.Width-inner.Width, outer.Height-inner.Height
	case Center:
		x, y = (outer.Width-inner.Width)/2, (outer.Height-inner.Height)/2
	}
	n.Move(geom.Pt(x, y))
	return widget.WithChildren(outer, []*widget.Node{n})
}

func (p Pin) Draw(t *widget.Tree, r widget.Renderer, th theme.Theme, style theme.Style, node *widget.Node, cursor event.Cursor) {
	p.Content.Draw(t.Children[0], r, th, style, node.Children[0], cursor)
}

func (p Pin) Update(t *widget.Tree, ev event.Event, node *widget.Node, cursor event.Cursor, r widget.Renderer, cb clipboard.Clipboard, shell *widget.Shell) {
	widget.UpdateOn(p.Content, t.Children[0], ev, node.Children[0], cursor, r, cb, shell)
}

func (p Pin) Operate(t *widget.Tree, node *widget.Node, r widget.Renderer, op widget.Operation) {
	operateChildren([]widget.Widget{p.Content}, t, node, r, op)
}

func operateChildren(ws []widget.Widget, t *widget.Tree, node *widget.Node, r widget.Renderer, op widget.Operation) {
	op.Container("", node.Bounds, func(op widget.Operation) {
		for i, w := range ws {
			widget.OperateOn(w, t.Children[i], node.Children[i], r, op)
		}
	})
}

// Quad is a filled rectangle. A zero dimension fills the available space.
type Quad struct {
	Width, Height float32
	Color         geom.Color
}

func (q Quad) Layout(_ *widget.Tree, _ widget.Renderer, lim widget.Limits) *widget.Node {
	size := geom.Sz(q.Width, q.Height)
	if size.Width == 0 {
		size.Width = lim.Max.Width
	}
	if size.Height == 0 {
		size.Height = lim.Max.Height
	}
	return widget.NewNode(lim.Resolve(size))
}

func (q Quad) Draw(_ *widget.Tree, r widget.Renderer, _ theme.Theme, _ theme.Style, node *widget.Node, _ event.Cursor) {
	r.FillQuad(node.Bounds, q.Color)
}

// Text is a single line of text. A zero Color means the text color of the
// style.
type Text struct {
	Content string
	Size    float32
	Color   geom.Color
}

func (x Text) size() float32 {
	if x.Size <= 0 {
		return DefaultTextSize
	}
	return x.Size
}

func (x Text) Layout(_ *widget.Tree, r widget.Renderer, lim widget.Limits) *widget.Node {
	return widget.NewNode(lim.Resolve(r.MeasureText(x.Content, x.size())))
}

func (x Text) Draw(_ *widget.Tree, r widget.Renderer, _ theme.Theme, style theme.Style, node *widget.Node, _ event.Cursor) {
	color := x.Color
	if color == (geom.Color{}) {
		color = style.Text
	}
	r.FillText(x.Content, node.Bounds.Position(), x.size(), color)
}
