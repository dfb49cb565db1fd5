// Package theme provides themes and the appearance derived from them.
package theme

import "src.plugview.dev/pkg/geom"

// Palette is the set of base colors of a Theme.
type Palette struct {
	Background geom.Color
	Text       geom.Color
	Primary    geom.Color
	Success    geom.Color
	Danger     geom.Color
}

// Theme is a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// Built-in themes.
var (
	Light = Theme{
		Name: "Light",
		Palette: Palette{
			Background: geom.White,
			Text:       geom.Black,
			Primary:    geom.RGB8(0x5E, 0x7C, 0xE2),
			Success:    geom.RGB8(0x12, 0x66, 0x4F),
			Danger:     geom.RGB8(0xC3, 0x42, 0x3F),
		},
	}
	Dark = Theme{
		Name: "Dark",
		Palette: Palette{
			Background: geom.RGB8(0x20, 0x22, 0x25),
			Text:       geom.Color{R: 0.9, G: 0.9, B: 0.9, A: 1},
			Primary:    geom.RGB8(0x5E, 0x7C, 0xE2),
			Success:    geom.RGB8(0x12, 0x66, 0x4F),
			Danger:     geom.RGB8(0xC3, 0x42, 0x3F),
		},
	}
)

// All lists the built-in themes.
var All = []Theme{Light, Dark}

// ByName returns the built-in theme with the given name.
func ByName(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Appearance is the window-level style of an application.
type Appearance struct {
	Background geom.Color
	Text       geom.Color
}

// DefaultStyle returns the Appearance of t when the application does not
// customize it.
func DefaultStyle(t Theme) Appearance {
	return Appearance{Background: t.Palette.Background, Text: t.Palette.Text}
}

// Style is the style passed to widgets when drawing.
type Style struct {
	Text geom.Color
}
