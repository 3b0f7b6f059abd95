// Package bounce provides a reconstructable demo unit: a box bouncing around
// the screen over a field of star particles. Leaving and re-entering the unit
// resumes the box where it was, which is the point of the demo.
package bounce

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/display"
	"github.com/vovakirdan/tui-engine/internal/forms"
	"github.com/vovakirdan/tui-engine/internal/multiform"
)

// UnitName is the bounce unit's registered name.
const UnitName = "bounce"

const (
	boxW     = 10
	boxH     = 4
	numStars = 24
)

// Unit is the bouncing-box multiform.
type Unit struct {
	multiform.Multiform

	screen  *core.Screen
	disp    *display.Manager
	rng     *rand.Rand
	box     core.Rect
	vx, vy  int
	paused  bool
	resizes *display.ResolutionListener
}

// New creates the bounce unit drawing into the given screen. The display
// manager may be nil; resize handling is then disabled.
func New(screen *core.Screen, disp *display.Manager) *Unit {
	u := &Unit{screen: screen, disp: disp}
	u.Init(u, multiform.Traits{Name: UnitName, Reconstructable: true})
	return u
}

// Construct seeds the box, scatters the star field, and hooks into
// resolution changes. Runs only on the first activation.
func (u *Unit) Construct(args multiform.ConstructionArgs) {
	seed := int64(args.Int("seed", 1))
	u.rng = rand.New(rand.NewSource(seed))

	// The screen may be degenerate (zero-sized PTY); Intn needs positives.
	w, h := u.screen.Width(), u.screen.Height()
	u.box = core.NewRect(u.rng.Intn(core.Max(1, w-boxW)), u.rng.Intn(core.Max(1, h-boxH)), boxW, boxH)
	u.vx, u.vy = 1, 1
	u.paused = false

	for range numStars {
		u.AddAnonymousForm("stars", forms.NewMarker(
			u.rng.Intn(core.Max(1, w)), u.rng.Intn(core.Max(1, h)), '.', core.ColorGray))
	}

	u.hookResize()
	u.SetRenderer(u.draw)
}

// Reconstruct runs on repeat activations: box position, velocity and stars
// survive from the previous visit, only the resize hook is re-armed.
func (u *Unit) Reconstruct(args multiform.ConstructionArgs) {
	u.hookResize()
	u.SetRenderer(u.draw)
}

// Deconstruct unhooks the resize listener but keeps the forms and box so a
// later Reconstruct resumes seamlessly.
func (u *Unit) Deconstruct() {
	if u.disp != nil && u.resizes != nil {
		u.disp.RemoveResolutionListener(u.resizes)
		u.resizes = nil
	}
}

func (u *Unit) hookResize() {
	if u.disp == nil {
		return
	}
	u.resizes = &display.ResolutionListener{
		OnResolutionChanged: func(prev, cur display.Resolution, scale float64) {
			u.clampToBounds(cur.Width, cur.Height)
		},
	}
	u.disp.RegisterResolutionListener(u.resizes)
}

// clampToBounds keeps the box and stars inside the new resolution.
func (u *Unit) clampToBounds(w, h int) {
	u.box.X = core.Clamp(u.box.X, 0, core.Max(0, w-u.box.W))
	u.box.Y = core.Clamp(u.box.Y, 0, core.Max(0, h-u.box.H))
	for _, f := range u.GetAnonymousForms("stars") {
		if m, ok := f.(*forms.Marker); ok {
			m.X = core.Clamp(m.X, 0, w-1)
			m.Y = core.Clamp(m.Y, 0, h-1)
		}
	}
}

// Update advances the box one tick, bouncing off the screen edges.
func (u *Unit) Update() {
	if u.paused {
		return
	}
	w, h := u.screen.Width(), u.screen.Height()
	u.box.X += u.vx
	u.box.Y += u.vy
	if u.box.X <= 0 || u.box.Right() >= w {
		u.vx = -u.vx
		u.box.X = core.Clamp(u.box.X, 0, core.Max(0, w-u.box.W))
	}
	if u.box.Y <= 0 || u.box.Bottom() >= h {
		u.vy = -u.vy
		u.box.Y = core.Clamp(u.box.Y, 0, core.Max(0, h-u.box.H))
	}
}

// HandleAction processes pause and back-to-menu.
func (u *Unit) HandleAction(a core.Action) {
	switch a {
	case core.ActionPause:
		u.paused = !u.paused
	case core.ActionBack:
		if mgr := u.Manager(); mgr != nil {
			//nolint:errcheck // the menu unit is always registered
			mgr.Activate("menu", nil)
		}
	}
}

// Box returns the current box rect, for tests.
func (u *Unit) Box() core.Rect { return u.box }

func (u *Unit) draw() {
	u.screen.Clear()
	for _, f := range u.GetAnonymousForms("stars") {
		if m, ok := f.(*forms.Marker); ok {
			m.Draw(u.screen)
		}
	}
	u.screen.DrawBox(u.box)
	cx, cy := u.box.Center()
	u.screen.SetColored(cx, cy, '*', core.ColorBrightYellow)

	hud := fmt.Sprintf("bounce  visits:%d  [p]ause [esc]menu", u.TimesActivated())
	if u.paused {
		hud = "bounce  PAUSED  [p] resume"
	}
	u.screen.DrawTextColored(1, 0, hud, core.ColorBrightCyan)
}
