package tk

import (
	"src.plugview.dev/pkg/clipboard"
	"src.plugview.dev/pkg/event"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/theme"
	"src.plugview.dev/pkg/widget"
)

// Button is a focusable push button that publishes OnPress when clicked, or
// when Enter is pressed while it has the focus.
type Button struct {
	ID      widget.ID
	Label   string
	OnPress any
	Padding float32
}

type buttonState struct {
	pressed bool
	focused bool
}

func (s *buttonState) IsFocused() bool { return s.focused }
func (s *buttonState) Focus()          { s.focused = true }
func (s *buttonState) Unfocus()        { s.focused = false }

const buttonTag widget.Tag = "tk.Button"

func (b Button) Tag() widget.Tag { return buttonTag }
func (b Button) NewState() any   { return &buttonState{} }

func (b Button) Layout(_ *widget.Tree, r widget.Renderer, lim widget.Limits) *widget.Node {
	text := r.MeasureText(b.Label, DefaultTextSize)
	return widget.NewNode(lim.Resolve(geom.Sz(text.Width+2*b.Padding, text.Height+2*b.Padding)))
}

func (b Button) Draw(t *widget.Tree, r widget.Renderer, th theme.Theme, style theme.Style, node *widget.Node, cursor event.Cursor) {
	st := t.State.(*buttonState)
	bg := th.Palette.Primary
	if st.pressed {
		bg.A *= 0.7
	} else if cursor.IsOver(node.Bounds) || st.focused {
		bg.A *= 0.85
	}
	r.FillQuad(node.Bounds, bg)
	r.FillText(b.Label, node.Bounds.Position().Add(geom.Vector{X: b.Padding, Y: b.Padding}), DefaultTextSize, style.Text)
}

func (b Button) Update(t *widget.Tree, ev event.Event, node *widget.Node, cursor event.Cursor, _ widget.Renderer, _ clipboard.Clipboard, shell *widget.Shell) {
	st := t.State.(*buttonState)
	switch ev := ev.(type) {
	case event.ButtonPressed:
		if ev.Button == event.ButtonLeft && cursor.IsOver(node.Bounds) {
			st.pressed = true
			shell.CaptureEvent()
		}
	case event.ButtonReleased:
		if ev.Button == event.ButtonLeft && st.pressed {
			st.pressed = false
			if cursor.IsOver(node.Bounds) {
				shell.Publish(b.OnPress)
			}
			shell.CaptureEvent()
		}
	case event.KeyPressed:
		if st.focused && ev.Key == event.NamedKey(event.Enter) {
			shell.Publish(b.OnPress)
			shell.CaptureEvent()
		}
	}
}

func (b Button) Operate(t *widget.Tree, node *widget.Node, _ widget.Renderer, op widget.Operation) {
	op.Focusable(b.ID, node.Bounds, t.State.(*buttonState))
}
