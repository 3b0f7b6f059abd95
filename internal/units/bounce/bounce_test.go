package bounce

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/display"
	"github.com/vovakirdan/tui-engine/internal/forms"
	"github.com/vovakirdan/tui-engine/internal/multiform"
)

func newTestUnit(t *testing.T, disp *display.Manager) (*multiform.Manager, *Unit, *core.Screen) {
	t.Helper()
	mgr := multiform.NewManager(log.New(io.Discard))
	screen := core.NewScreen(40, 12)

	u := New(screen, disp)
	if err := mgr.Register(u); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return mgr, u, screen
}

func newTestDisplay(t *testing.T) *display.Manager {
	t.Helper()
	disp, err := display.NewManager(display.NopSink{}, nil, config.DisplayConfig{
		Width:  40,
		Height: 12,
	}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewManager(display) failed: %v", err)
	}
	return disp
}

func TestConstructSeedsStarsAndBox(t *testing.T) {
	mgr, u, _ := newTestUnit(t, nil)
	if err := mgr.Activate(UnitName, nil); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	if got := len(u.GetAnonymousForms("stars")); got != numStars {
		t.Errorf("expected %d stars, got %d", numStars, got)
	}
	box := u.Box()
	if box.W != boxW || box.H != boxH {
		t.Errorf("box dimensions = %dx%d, want %dx%d", box.W, box.H, boxW, boxH)
	}
}

func TestConstructOnZeroSizedScreen(t *testing.T) {
	mgr := multiform.NewManager(log.New(io.Discard))
	u := New(core.NewScreen(0, 0), nil)
	if err := mgr.Register(u); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := mgr.Activate(UnitName, nil); err != nil {
		t.Fatalf("Activate on zero-sized screen failed: %v", err)
	}
	if got := len(u.GetAnonymousForms("stars")); got != numStars {
		t.Errorf("expected %d stars on zero-sized screen, got %d", numStars, got)
	}
	u.Update()
	if err := u.Render(); err != nil {
		t.Fatalf("Render on zero-sized screen failed: %v", err)
	}
}

func TestUpdateBouncesOffEdges(t *testing.T) {
	mgr, u, screen := newTestUnit(t, nil)
	if err := mgr.Activate(UnitName, nil); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	w, h := screen.Width(), screen.Height()
	for range 500 {
		u.Update()
		box := u.Box()
		if box.X < 0 || box.Right() > w || box.Y < 0 || box.Bottom() > h {
			t.Fatalf("box left screen bounds: %+v", box)
		}
	}
}

func TestPauseFreezesUpdates(t *testing.T) {
	mgr, u, _ := newTestUnit(t, nil)
	if err := mgr.Activate(UnitName, nil); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	u.HandleAction(core.ActionPause)
	before := u.Box()
	u.Update()
	if u.Box() != before {
		t.Error("box moved while paused")
	}
	u.HandleAction(core.ActionPause)
	u.Update()
	if u.Box() == before {
		t.Error("box did not move after unpause")
	}
}

func TestReconstructResumesState(t *testing.T) {
	mgr, u, screen := newTestUnit(t, nil)
	other := &idleUnit{}
	other.Init(other, multiform.Traits{Name: "idle"})
	if err := mgr.Register(other); err != nil {
		t.Fatalf("Register(idle) failed: %v", err)
	}

	if err := mgr.Activate(UnitName, nil); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	for range 7 {
		u.Update()
	}
	boxBefore := u.Box()

	if err := mgr.Activate("idle", nil); err != nil {
		t.Fatalf("Activate(idle) failed: %v", err)
	}
	if err := mgr.Activate(UnitName, nil); err != nil {
		t.Fatalf("re-Activate failed: %v", err)
	}

	if u.TimesActivated() != 2 {
		t.Errorf("TimesActivated() = %d, want 2", u.TimesActivated())
	}
	if u.Box() != boxBefore {
		t.Errorf("box not resumed: got %+v, want %+v", u.Box(), boxBefore)
	}
	if got := len(u.GetAnonymousForms("stars")); got != numStars {
		t.Errorf("stars duplicated or lost on reconstruct: %d", got)
	}

	if err := u.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(screen.String(), "visits:2") {
		t.Error("HUD does not report second visit")
	}
}

func TestResolutionChangeClampsBox(t *testing.T) {
	disp := newTestDisplay(t)
	mgr, u, _ := newTestUnit(t, disp)
	if err := mgr.Activate(UnitName, nil); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	if err := disp.SetResolution(display.Resolution{Width: 14, Height: 6}); err != nil {
		t.Fatalf("SetResolution failed: %v", err)
	}
	box := u.Box()
	if box.Right() > 14 || box.Bottom() > 6 {
		t.Errorf("box not clamped to new resolution: %+v", box)
	}
	for _, f := range u.GetAnonymousForms("stars") {
		m := f.(*forms.Marker)
		if m.X >= 14 || m.Y >= 6 {
			t.Fatalf("star outside new resolution: (%d,%d)", m.X, m.Y)
		}
	}
}

func TestDeconstructUnhooksResizeListener(t *testing.T) {
	disp := newTestDisplay(t)
	mgr, u, _ := newTestUnit(t, disp)
	other := &idleUnit{}
	other.Init(other, multiform.Traits{Name: "idle"})
	if err := mgr.Register(other); err != nil {
		t.Fatalf("Register(idle) failed: %v", err)
	}

	if err := mgr.Activate(UnitName, nil); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	// Walk the box past x=20 so a later clamp to 14 columns would move it.
	for i := 0; i < 200 && u.Box().X < 20; i++ {
		u.Update()
	}
	if u.Box().X < 20 {
		t.Fatalf("box never reached x>=20: %+v", u.Box())
	}
	if err := mgr.Activate("idle", nil); err != nil {
		t.Fatalf("Activate(idle) failed: %v", err)
	}

	boxBefore := u.Box()
	if err := disp.SetResolution(display.Resolution{Width: 14, Height: 6}); err != nil {
		t.Fatalf("SetResolution failed: %v", err)
	}
	if u.Box() != boxBefore {
		t.Error("deactivated unit still reacted to resolution change")
	}
}

type idleUnit struct {
	multiform.Multiform
}

func (u *idleUnit) Construct(args multiform.ConstructionArgs)   {}
func (u *idleUnit) Reconstruct(args multiform.ConstructionArgs) {}
func (u *idleUnit) Deconstruct()                                {}
