package multiform

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
)

// Manager owns a set of registered units and drives their activation
// lifecycle. Exactly one unit is active at a time; switching deconstructs
// the previous unit before constructing the next.
//
// The manager is an explicit instance rather than a package-level registry,
// so there is no hidden static state and tests can build isolated managers.
type Manager struct {
	logger *log.Logger
	units  map[string]Unit
	active Unit
}

// NewManager creates an empty manager. A nil logger gets a default stderr
// logger with the engine prefix.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "multiform",
		})
	}
	return &Manager{
		logger: logger,
		units:  make(map[string]Unit),
	}
}

// Register adds a unit under its resolved name and installs the manager
// back-reference via PostRegister. The unit must have been initialized with
// Init; duplicate names and re-registration fail.
func (mgr *Manager) Register(u Unit) error {
	base := u.Base()
	if base.self == nil {
		return fmt.Errorf("multiform: unit registered before Init")
	}
	if _, exists := mgr.units[base.name]; exists {
		return &AlreadyRegisteredError{Name: base.name}
	}
	if err := base.PostRegister(mgr); err != nil {
		return err
	}
	mgr.units[base.name] = u
	mgr.logger.Debug("registered unit", "name", base.name, "reconstructable", base.reconstructable)
	return nil
}

// Activate switches to the named unit. The currently active unit, if any
// and different, is deconstructed first. The target then runs its
// InternalConstruct dispatch with the given args.
func (mgr *Manager) Activate(name string, args ConstructionArgs) error {
	next, ok := mgr.units[name]
	if !ok {
		return fmt.Errorf("multiform: unknown unit %q", name)
	}

	if mgr.active != nil && mgr.active != next {
		mgr.active.Deconstruct()
		mgr.logger.Debug("deconstructed unit", "name", mgr.active.Base().name)
	}

	mgr.active = next
	next.Base().InternalConstruct(args)
	mgr.logger.Info("activated unit",
		"name", name,
		"times", next.Base().timesActivated,
	)
	return nil
}

// Deactivate deconstructs the given unit and leaves no unit active. Only
// the currently active unit can be deactivated.
func (mgr *Manager) Deactivate(m *Multiform) error {
	if mgr.active == nil || mgr.active.Base() != m {
		return fmt.Errorf("multiform: %q is not the active unit", m.name)
	}
	mgr.active.Deconstruct()
	mgr.active = nil
	mgr.logger.Info("deactivated unit", "name", m.name)
	return nil
}

// Active returns the active unit's Multiform, or nil.
func (mgr *Manager) Active() *Multiform {
	if mgr.active == nil {
		return nil
	}
	return mgr.active.Base()
}

// ActiveUnit returns the active concrete unit, or nil.
func (mgr *Manager) ActiveUnit() Unit {
	return mgr.active
}

// Get returns the registered unit with the given name.
func (mgr *Manager) Get(name string) (Unit, bool) {
	u, ok := mgr.units[name]
	return u, ok
}

// List returns the registered unit names, sorted.
func (mgr *Manager) List() []string {
	names := make([]string, 0, len(mgr.units))
	for name := range mgr.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
