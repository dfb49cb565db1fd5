package widget_test

import (
	"testing"

	"src.plugview.dev/pkg/geom"
	. "src.plugview.dev/pkg/widget"
)

func TestNode_MoveCarriesChildren(t *testing.T) {
	child := NewNode(geom.Sz(2, 2))
	child.Move(geom.Pt(1, 1))
	n := WithChildren(geom.Sz(10, 10), []*Node{child})
	n.Move(geom.Pt(5, 5))
	if n.Bounds != geom.Rect(5, 5, 10, 10) {
		t.Errorf("node bounds %v", n.Bounds)
	}
	if child.Bounds != geom.Rect(6, 6, 2, 2) {
		t.Errorf("child bounds %v", child.Bounds)
	}
}

func TestLimits(t *testing.T) {
	l := Limits{Min: geom.Sz(10, 10), Max: geom.Sz(100, 50)}
	if got := l.Resolve(geom.Sz(5, 80)); got != geom.Sz(10, 50) {
		t.Errorf("Resolve -> %v", got)
	}
	if got := l.Shrink(geom.Sz(20, 20)); got != (Limits{Min: geom.Sz(0, 0), Max: geom.Sz(80, 30)}) {
		t.Errorf("Shrink -> %v", got)
	}
}
