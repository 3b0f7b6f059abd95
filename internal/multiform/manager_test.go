package multiform

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func testManager() *Manager {
	return NewManager(log.New(io.Discard))
}

func TestRegisterSetsManager(t *testing.T) {
	mgr := testManager()
	u := newStubUnit(Traits{Name: "menu"})

	if u.Registered() {
		t.Error("unit should not be registered before Register")
	}
	if err := mgr.Register(u); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if !u.Registered() || u.Manager() != mgr {
		t.Error("Register should install the manager back-reference")
	}

	names := mgr.List()
	if len(names) != 1 || names[0] != "menu" {
		t.Errorf("List() = %v, expected [menu]", names)
	}
}

func TestRegisterDuplicateName(t *testing.T) {
	mgr := testManager()
	if err := mgr.Register(newStubUnit(Traits{Name: "menu"})); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	err := mgr.Register(newStubUnit(Traits{Name: "menu"}))
	var already *AlreadyRegisteredError
	if !errors.As(err, &already) {
		t.Errorf("Register() duplicate = %v, expected AlreadyRegisteredError", err)
	}
}

func TestRegisterTwice(t *testing.T) {
	mgr1 := testManager()
	mgr2 := testManager()
	u := newStubUnit(Traits{Name: "menu"})

	if err := mgr1.Register(u); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	err := mgr2.Register(u)
	var already *AlreadyRegisteredError
	if !errors.As(err, &already) {
		t.Errorf("re-registering with another manager = %v, expected AlreadyRegisteredError", err)
	}
}

func TestActivateSwitchesUnits(t *testing.T) {
	mgr := testManager()
	menu := newStubUnit(Traits{Name: "menu"})
	game := newStubUnit(Traits{Name: "game", Reconstructable: true})
	if err := mgr.Register(menu); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if err := mgr.Register(game); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	if err := mgr.Activate("menu", nil); err != nil {
		t.Fatalf("Activate(menu) failed: %v", err)
	}
	if mgr.Active() != menu.Base() {
		t.Error("menu should be active")
	}

	if err := mgr.Activate("game", nil); err != nil {
		t.Fatalf("Activate(game) failed: %v", err)
	}
	if menu.deconstructs != 1 {
		t.Errorf("previous unit deconstructs = %d, expected 1", menu.deconstructs)
	}
	if game.constructs != 1 {
		t.Errorf("game constructs = %d, expected 1", game.constructs)
	}

	// Returning to the reconstructable game re-enters through Reconstruct.
	if err := mgr.Activate("menu", nil); err != nil {
		t.Fatalf("Activate(menu) failed: %v", err)
	}
	if err := mgr.Activate("game", nil); err != nil {
		t.Fatalf("Activate(game) failed: %v", err)
	}
	if game.reconstructs != 1 {
		t.Errorf("game reconstructs = %d, expected 1", game.reconstructs)
	}
	if game.TimesActivated() != 2 {
		t.Errorf("game TimesActivated() = %d, expected 2", game.TimesActivated())
	}
}

func TestActivateUnknown(t *testing.T) {
	mgr := testManager()
	if err := mgr.Activate("ghost", nil); err == nil {
		t.Error("activating an unknown unit should fail")
	}
}

func TestDeactivate(t *testing.T) {
	mgr := testManager()
	menu := newStubUnit(Traits{Name: "menu"})
	if err := mgr.Register(menu); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if err := mgr.Activate("menu", nil); err != nil {
		t.Fatalf("Activate() failed: %v", err)
	}

	if err := menu.Deactivate(); err != nil {
		t.Fatalf("Deactivate() failed: %v", err)
	}
	if menu.deconstructs != 1 {
		t.Errorf("deconstructs = %d, expected 1", menu.deconstructs)
	}
	if mgr.Active() != nil {
		t.Error("no unit should be active after Deactivate")
	}

	// Deactivating an inactive unit fails.
	if err := menu.Deactivate(); err == nil {
		t.Error("deactivating an inactive unit should fail")
	}
}

func TestDeactivateUnregistered(t *testing.T) {
	u := newStubUnit(Traits{Name: "loner"})

	err := u.Deactivate()
	var notReg *NotRegisteredError
	if !errors.As(err, &notReg) {
		t.Errorf("Deactivate() unregistered = %v, expected NotRegisteredError", err)
	}
}
