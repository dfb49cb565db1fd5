package tk_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.plugview.dev/pkg/clipboard"
	"src.plugview.dev/pkg/event"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/theme"
	. "src.plugview.dev/pkg/tk"
	"src.plugview.dev/pkg/widget"
	"src.plugview.dev/pkg/widget/operation"
)

// fixture holds a laid out widget for driving it directly.
type fixture struct {
	w        widget.Widget
	tree     *widget.Tree
	node     *widget.Node
	r        *fakeRenderer
	messages []any
}

func setup(w widget.Widget, size geom.Size) *fixture {
	f := &fixture{w: w, tree: widget.NewTree(w), r: &fakeRenderer{}}
	f.node = w.Layout(f.tree, f.r, widget.Loose(size))
	return f
}

func (f *fixture) send(ev event.Event, cursor event.Cursor) event.Status {
	shell := widget.NewShell(&f.messages)
	widget.UpdateOn(f.w, f.tree, ev, f.node, cursor, f.r, clipboard.Null{}, shell)
	return shell.Status()
}

func (f *fixture) operate(op widget.Operation) widget.Outcome {
	for {
		widget.OperateOn(f.w, f.tree, f.node, f.r, op)
		o := op.Finish()
		if o.IsTerminal() {
			return o
		}
		op = o.Next()
	}
}

func TestColumn_Layout(t *testing.T) {
	f := setup(Column{
		Items: []widget.Widget{
			Quad{Width: 10, Height: 5},
			Text{Content: "abcd", Size: 10},
		},
		Spacing: 2,
		Padding: 1,
	}, geom.Sz(100, 100))

	want := []geom.Rectangle{geom.Rect(1, 1, 10, 5), geom.Rect(1, 8, 20, 10)}
	var got []geom.Rectangle
	for _, n := range f.node.Children {
		got = append(got, n.Bounds)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("child bounds (-want +got):\n%s", diff)
	}
	if f.node.Size() != geom.Sz(22, 19) {
		t.Errorf("column size %v, want 22x19", f.node.Size())
	}
}

func TestPin_BottomRight(t *testing.T) {
	f := setup(Pin{Content: Quad{Width: 20, Height: 20}, At: BottomRight}, geom.Sz(100, 50))
	if got := f.node.Children[0].Bounds; got != geom.Rect(80, 30, 20, 20) {
		t.Errorf("pinned bounds %v", got)
	}
}

func TestButton_Click(t *testing.T) {
	f := setup(Button{Label: "ok", OnPress: "pressed"}, geom.Sz(100, 100))
	inside := event.CursorAt(geom.Pt(1, 1))

	if st := f.send(event.ButtonPressed{Button: event.ButtonLeft}, inside); st != event.Captured {
		t.Errorf("press status %v", st)
	}
	f.send(event.ButtonReleased{Button: event.ButtonLeft}, inside)
	if diff := cmp.Diff([]any{"pressed"}, f.messages); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestButton_ReleaseOutsideDoesNotPress(t *testing.T) {
	f := setup(Button{Label: "ok", OnPress: "pressed"}, geom.Sz(100, 100))
	f.send(event.ButtonPressed{Button: event.ButtonLeft}, event.CursorAt(geom.Pt(1, 1)))
	f.send(event.ButtonReleased{Button: event.ButtonLeft}, event.CursorAt(geom.Pt(90, 90)))
	if len(f.messages) != 0 {
		t.Errorf("got messages %v", f.messages)
	}
}

func TestButton_EnterWhenFocused(t *testing.T) {
	f := setup(Column{Items: []widget.Widget{
		Button{ID: "a", Label: "a", OnPress: "a"},
		Button{ID: "b", Label: "b", OnPress: "b"},
	}}, geom.Sz(100, 100))
	enter := event.KeyPressed{Key: event.NamedKey(event.Enter)}

	f.send(enter, event.CursorUnavailable)
	if len(f.messages) != 0 {
		t.Errorf("unfocused buttons published %v", f.messages)
	}

	f.operate(operation.Focus("b"))
	f.send(enter, event.CursorUnavailable)
	f.operate(operation.FocusNext())
	f.send(enter, event.CursorUnavailable)
	if diff := cmp.Diff([]any{"b", "a"}, f.messages); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
	o := f.operate(operation.FocusedID())
	if v, _ := o.Value(); v != widget.ID("a") {
		t.Errorf("focused %v, want a", v)
	}
}

func TestStack_CaptureHidesCursorFromLowerLayers(t *testing.T) {
	f := setup(Stack{Layers: []widget.Widget{
		Button{Label: "below", OnPress: "below"},
		Button{Label: "above", OnPress: "above"},
	}}, geom.Sz(100, 100))
	at := event.CursorAt(geom.Pt(1, 1))
	f.send(event.ButtonPressed{Button: event.ButtonLeft}, at)
	f.send(event.ButtonReleased{Button: event.ButtonLeft}, at)
	if diff := cmp.Diff([]any{"above"}, f.messages); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestText_DrawUsesStyleColor(t *testing.T) {
	f := setup(Text{Content: "hi"}, geom.Sz(100, 100))
	f.w.Draw(f.tree, f.r, theme.Light, theme.Style{Text: geom.Black}, f.node, event.CursorUnavailable)
	if diff := cmp.Diff([]string{`text "hi" at {0 0}`}, f.r.calls); diff != "" {
		t.Errorf("draw calls (-want +got):\n%s", diff)
	}
}
