package host

import "src.plugview.dev/pkg/event"

// Translator converts raw host events into normalized events.
type Translator interface {
	// Translate appends the normalized events for ev to out and returns the
	// extended slice. It keeps *mods current. When ignoreNonModifierKeys is
	// true, keyboard events for keys other than modifiers produce nothing so
	// that the host can handle them.
	Translate(ev Event, mods *event.Modifiers, ignoreNonModifierKeys bool, out []event.Event) []event.Event
}

// DefaultTranslator is the built-in Translator.
var DefaultTranslator Translator = translator{}

type translator struct{}

func (translator) Translate(ev Event, mods *event.Modifiers, ignoreNonModifierKeys bool, out []event.Event) []event.Event {
	switch ev := ev.(type) {
	case MouseEvent:
		if ev.Modifiers != *mods {
			*mods = ev.Modifiers
			out = append(out, event.ModifiersChanged{Modifiers: ev.Modifiers})
		}
		switch ev.Kind {
		case MouseMoved:
			out = append(out, event.CursorMoved{Position: ev.Position})
		case MouseEntered:
			out = append(out, event.CursorEntered{})
		case MouseLeft:
			out = append(out, event.CursorLeft{})
		case MouseDown:
			out = append(out, event.ButtonPressed{Button: ev.Button})
		case MouseUp:
			out = append(out, event.ButtonReleased{Button: ev.Button})
		case MouseWheel:
			out = append(out, event.WheelScrolled{Delta: ev.Delta, Lines: ev.Lines})
		}
	case KeyboardEvent:
		isModifier := ev.Key.IsModifier()
		newMods := ev.Modifiers
		if bit := ev.Key.ModifierBit(); bit != 0 {
			// Hosts report the modifier state from before the change.
			if ev.Pressed {
				newMods |= bit
			} else {
				newMods &^= bit
			}
		}
		if newMods != *mods {
			*mods = newMods
			out = append(out, event.ModifiersChanged{Modifiers: newMods})
		}
		if ignoreNonModifierKeys && !isModifier {
			return out
		}
		if ev.Pressed {
			out = append(out, event.KeyPressed{Key: ev.Key, Modifiers: newMods, Text: ev.Text, Repeat: ev.Repeat})
		} else {
			out = append(out, event.KeyReleased{Key: ev.Key, Modifiers: newMods})
		}
	case WindowEvent:
		switch ev.Kind {
		case WindowResized:
			out = append(out, event.WindowResized{Size: ev.Info.Logical()})
		case WindowFocused:
			out = append(out, event.WindowFocused{})
		case WindowUnfocused:
			out = append(out, event.WindowUnfocused{})
		}
	}
	return out
}
