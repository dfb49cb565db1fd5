package widget

import "src.plugview.dev/pkg/geom"

// Limits constrains the size of a widget during layout.
type Limits struct {
	Min, Max geom.Size
}

// Loose returns Limits with no minimum.
func Loose(max geom.Size) Limits { return Limits{Max: max} }

// Resolve clamps s into the limits.
func (l Limits) Resolve(s geom.Size) geom.Size {
	return s.Max(l.Min).Min(l.Max)
}

// Shrink returns the limits reduced by the given amount in both dimensions.
func (l Limits) Shrink(by geom.Size) Limits {
	sub := func(a, b float32) float32 { return max(0, a-b) }
	return Limits{
		Min: geom.Sz(sub(l.Min.Width, by.Width), sub(l.Min.Height, by.Height)),
		Max: geom.Sz(sub(l.Max.Width, by.Width), sub(l.Max.Height, by.Height)),
	}
}

// Node is the computed layout of a widget. Bounds are absolute.
type Node struct {
	Bounds   geom.Rectangle
	Children []*Node
}

// NewNode returns a childless Node of the given size at the origin.
func NewNode(size geom.Size) *Node {
	return &Node{Bounds: geom.RectFromSize(size)}
}

// WithChildren returns a Node of the given size at the origin with children.
func WithChildren(size geom.Size, children []*Node) *Node {
	return &Node{Bounds: geom.RectFromSize(size), Children: children}
}

// Size returns the size of n.
func (n *Node) Size() geom.Size { return n.Bounds.Size() }

// Move places n at p, moving its descendants along.
func (n *Node) Move(p geom.Point) {
	n.translate(p.Sub(n.Bounds.Position()))
}

func (n *Node) translate(v geom.Vector) {
	n.Bounds = n.Bounds.Translate(v)
	for _, c := range n.Children {
		c.translate(v)
	}
}
