// Package forms provides ready-made form types for multiform units: small
// drawable leaves that live in a unit's form group and render themselves
// into the screen buffer.
package forms

import (
	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/multiform"
)

// Label is a positioned text form.
type Label struct {
	multiform.BaseForm
	X, Y  int
	Text  string
	Color core.Color
}

// NewLabel creates a named label. Pass an empty name for an anonymous one.
func NewLabel(name string, x, y int, text string, color core.Color) *Label {
	return &Label{
		BaseForm: multiform.BaseForm{FormName: name},
		X:        x,
		Y:        y,
		Text:     text,
		Color:    color,
	}
}

// Draw renders the label into the screen buffer.
func (l *Label) Draw(dst *core.Screen) {
	dst.DrawTextColored(l.X, l.Y, l.Text, l.Color)
}

// Marker is a single-rune form, useful for particles and markers.
type Marker struct {
	multiform.BaseForm
	X, Y  int
	Rune  rune
	Color core.Color
}

// NewMarker creates an anonymous single-rune form.
func NewMarker(x, y int, r rune, color core.Color) *Marker {
	return &Marker{X: x, Y: y, Rune: r, Color: color}
}

// Draw renders the marker into the screen buffer.
func (m *Marker) Draw(dst *core.Screen) {
	dst.SetColored(m.X, m.Y, m.Rune, m.Color)
}
