// Package menu provides the engine's start unit: a cursor menu listing the
// other registered units. Selecting an entry activates that unit.
package menu

import (
	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/forms"
	"github.com/vovakirdan/tui-engine/internal/multiform"
)

// UnitName is the menu's registered name.
const UnitName = "menu"

// Unit is the menu multiform. It is not reconstructable: every activation
// rebuilds the entry list, so units registered later still show up.
type Unit struct {
	multiform.Multiform

	screen  *core.Screen
	entries []string
	cursor  int
}

// New creates the menu unit drawing into the given screen.
func New(screen *core.Screen) *Unit {
	u := &Unit{screen: screen}
	u.Init(u, multiform.Traits{Name: UnitName})
	return u
}

// Construct builds the menu's form group from the currently registered
// units and installs the renderer.
func (u *Unit) Construct(args multiform.ConstructionArgs) {
	u.ClearForms(true)
	u.cursor = 0
	u.entries = nil

	if mgr := u.Manager(); mgr != nil {
		for _, name := range mgr.List() {
			if name != u.Name() {
				u.entries = append(u.entries, name)
			}
		}
	}

	// Named chrome forms plus one anonymous form per entry.
	//nolint:errcheck // fresh group, names are unique
	u.AddForms(
		forms.NewLabel("title", 2, 1, "TUI ENGINE", core.ColorBrightCyan),
		forms.NewLabel("hint", 2, 3, "up/down select, enter confirm, q quit", core.ColorGray),
	)
	for i, name := range u.entries {
		u.AddAnonymousForm("entries", forms.NewLabel("", 4, 5+i, name, core.ColorWhite))
	}

	u.SetRenderer(u.draw)
}

// Reconstruct never runs for the menu (not reconstructable); it delegates
// to Construct for completeness.
func (u *Unit) Reconstruct(args multiform.ConstructionArgs) {
	u.Construct(args)
}

// Deconstruct drops the menu's forms.
func (u *Unit) Deconstruct() {
	u.ClearForms(true)
}

// HandleAction moves the cursor or activates the selected unit.
func (u *Unit) HandleAction(a core.Action) {
	switch a {
	case core.ActionUp:
		if u.cursor > 0 {
			u.cursor--
		}
	case core.ActionDown:
		if u.cursor < len(u.entries)-1 {
			u.cursor++
		}
	case core.ActionConfirm:
		if u.cursor >= 0 && u.cursor < len(u.entries) {
			mgr := u.Manager()
			if mgr != nil {
				//nolint:errcheck // entry names come from the manager itself
				mgr.Activate(u.entries[u.cursor], nil)
			}
		}
	}
}

// Selected returns the entry the cursor is on, or "" for an empty menu.
func (u *Unit) Selected() string {
	if u.cursor < 0 || u.cursor >= len(u.entries) {
		return ""
	}
	return u.entries[u.cursor]
}

func (u *Unit) draw() {
	u.screen.Clear()

	for _, f := range u.GetForms("") {
		if label, ok := f.(*forms.Label); ok {
			label.Draw(u.screen)
		}
	}
	for i, f := range u.GetAnonymousForms("entries") {
		label, ok := f.(*forms.Label)
		if !ok {
			continue
		}
		label.Color = core.ColorWhite
		if i == u.cursor {
			label.Color = core.ColorBrightYellow
			u.screen.SetColored(label.X-2, label.Y, '>', core.ColorBrightYellow)
		}
		label.Draw(u.screen)
	}
}
