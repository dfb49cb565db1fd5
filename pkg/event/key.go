package event

import "strings"

// Modifiers is a bit set of modifier keys.
type Modifiers uint8

// Bits of Modifiers.
const (
	Shift Modifiers = 1 << iota
	Ctrl
	Alt
	Logo
)

// Has reports whether all bits of o are set in m.
func (m Modifiers) Has(o Modifiers) bool { return m&o == o }

func (m Modifiers) String() string {
	var parts []string
	for _, p := range []struct {
		bit  Modifiers
		name string
	}{{Ctrl, "Ctrl"}, {Alt, "Alt"}, {Shift, "Shift"}, {Logo, "Logo"}} {
		if m.Has(p.bit) {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "+")
}

// Named identifies a key that does not produce a character.
type Named uint16

// Named keys. NoName means the key is identified by its rune.
const (
	NoName Named = iota
	Enter
	Tab
	Backspace
	Escape
	Delete
	Left
	Right
	Up
	Down
	Home
	End
	PageUp
	PageDown
	ShiftKey
	CtrlKey
	AltKey
	LogoKey
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
)

// Key identifies a keyboard key, either by a character or by name.
type Key struct {
	Rune  rune
	Named Named
}

// K returns a character Key.
func K(r rune) Key { return Key{Rune: r} }

// NamedKey returns a named Key.
func NamedKey(n Named) Key { return Key{Named: n} }

// IsModifier reports whether k is one of the modifier keys.
func (k Key) IsModifier() bool {
	switch k.Named {
	case ShiftKey, CtrlKey, AltKey, LogoKey:
		return true
	}
	return false
}

// ModifierBit returns the Modifiers bit corresponding to a modifier key, or 0.
func (k Key) ModifierBit() Modifiers {
	switch k.Named {
	case ShiftKey:
		return Shift
	case CtrlKey:
		return Ctrl
	case AltKey:
		return Alt
	case LogoKey:
		return Logo
	}
	return 0
}
