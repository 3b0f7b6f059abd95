// Package multiform provides named, independently activatable units of game
// logic with isolated construct/reconstruct/deconstruct lifecycles, each
// owning a hierarchical registry of forms and a render hook. A Manager
// switches between registered units; reconstructable units get a
// lighter-weight re-entry on every activation after the first.
package multiform

import (
	"fmt"
	"strings"
)

// Traits declares a unit's identity at construction time. Units state their
// name and reconstruction eligibility explicitly; both are immutable after
// Init.
type Traits struct {
	// Name identifies the unit to the manager. When empty, the concrete
	// type name of the unit is used instead.
	Name string

	// Reconstructable marks the unit for the lighter Reconstruct re-entry
	// on activations after the first.
	Reconstructable bool
}

// Lifecycle is implemented by concrete units. Construct runs on first
// activation (and on every activation for non-reconstructable units);
// Reconstruct runs on repeat activations of reconstructable units;
// Deconstruct runs when the manager deactivates the unit.
type Lifecycle interface {
	Construct(args ConstructionArgs)
	Reconstruct(args ConstructionArgs)
	Deconstruct()
}

// Unit is what the manager registers: a concrete lifecycle implementation
// embedding a Multiform. The embedded Multiform provides Base.
type Unit interface {
	Lifecycle
	Base() *Multiform
}

// Multiform is the embeddable engine-side state of a unit: activation
// counting, the owned form group, the render indirection, and the manager
// back-reference. Concrete units embed it and call Init from their
// constructor:
//
//	type Menu struct {
//		multiform.Multiform
//	}
//
//	func New() *Menu {
//		m := &Menu{}
//		m.Init(m, multiform.Traits{Name: "menu"})
//		return m
//	}
type Multiform struct {
	name            string
	reconstructable bool
	self            Lifecycle
	manager         *Manager
	timesActivated  int
	forms           *FormGroup
	renderer        func()
}

// Init wires the embedded Multiform to its concrete unit and resolves the
// traits. It must be called exactly once, from the unit's constructor,
// before the unit is registered. Calling it again panics.
func (m *Multiform) Init(self Lifecycle, traits Traits) {
	if m.self != nil {
		panic(fmt.Sprintf("multiform: %q initialized twice", m.name))
	}
	name := traits.Name
	if name == "" {
		name = typeName(self)
	}
	m.name = name
	m.reconstructable = traits.Reconstructable
	m.self = self
	m.forms = NewFormGroup()
}

// typeName derives a fallback unit name from the concrete type.
func typeName(self Lifecycle) string {
	return strings.TrimLeft(fmt.Sprintf("%T", self), "*")
}

// Base returns the embedded Multiform; it makes any embedding type satisfy
// Unit.
func (m *Multiform) Base() *Multiform {
	return m
}

// Name returns the unit's resolved name.
func (m *Multiform) Name() string {
	return m.name
}

// Reconstructable reports whether repeat activations re-enter through
// Reconstruct.
func (m *Multiform) Reconstructable() bool {
	return m.reconstructable
}

// TimesActivated returns how many times the unit has been activated. The
// counter only ever grows.
func (m *Multiform) TimesActivated() int {
	return m.timesActivated
}

// Manager returns the owning manager, or nil before registration.
func (m *Multiform) Manager() *Manager {
	return m.manager
}

// Registered reports whether PostRegister has been called.
func (m *Multiform) Registered() bool {
	return m.manager != nil
}

// PostRegister installs the manager back-reference. The manager calls it
// once during Register; a second call fails.
func (m *Multiform) PostRegister(mgr *Manager) error {
	if m.manager != nil {
		return &AlreadyRegisteredError{Name: m.name}
	}
	m.manager = mgr
	return nil
}

// InternalConstruct is called by the manager on every activation. It
// increments the activation counter and dispatches to Construct, or to
// Reconstruct when the unit is reconstructable and this is at least the
// second activation.
func (m *Multiform) InternalConstruct(args ConstructionArgs) {
	if m.self == nil {
		panic("multiform: InternalConstruct before Init")
	}
	m.timesActivated++
	if m.reconstructable && m.timesActivated > 1 {
		m.self.Reconstruct(args)
		return
	}
	m.self.Construct(args)
}

// Deactivate asks the manager to deactivate this unit; the manager invokes
// Deconstruct before any reuse.
func (m *Multiform) Deactivate() error {
	if m.manager == nil {
		return &NotRegisteredError{Name: m.name}
	}
	return m.manager.Deactivate(m)
}

// Unit returns the concrete lifecycle implementation this Multiform was
// initialized with.
func (m *Multiform) Unit() Lifecycle {
	return m.self
}

// SetRenderer installs the render closure. Unit constructors call it during
// Construct; it is not part of the manager-facing surface.
func (m *Multiform) SetRenderer(renderer func()) {
	m.renderer = renderer
}

// Render invokes the installed renderer. Rendering before SetRenderer has
// ever been called fails with an UnsetRendererError instead of faulting.
func (m *Multiform) Render() error {
	if m.renderer == nil {
		return &UnsetRendererError{Multiform: m.name}
	}
	m.renderer()
	return nil
}

// Forms returns the unit's form group for direct tree access.
func (m *Multiform) Forms() *FormGroup {
	return m.forms
}

// AddForm adds a form to the group, keyed by its name or appended to the
// root anonymous sequence when the form is anonymous. On success the form's
// Parent is bound to this multiform, transferring ownership.
func (m *Multiform) AddForm(f Form) error {
	if f.Anonymous() {
		m.forms.AddAnonymous(f)
	} else if err := m.forms.Insert(f.Name(), f); err != nil {
		return err
	}
	f.bind(m)
	return nil
}

// AddForms adds forms in order, stopping at the first failure.
func (m *Multiform) AddForms(forms ...Form) error {
	for _, f := range forms {
		if err := m.AddForm(f); err != nil {
			return err
		}
	}
	return nil
}

// AddAnonymousForm appends a form to the anonymous sequence of the group
// node at groupPath, binding ownership.
func (m *Multiform) AddAnonymousForm(groupPath string, f Form) {
	m.forms.InsertAnonymous(groupPath, f)
	f.bind(m)
}

// AddAnonymousForms appends forms to the group node at groupPath in order.
func (m *Multiform) AddAnonymousForms(groupPath string, forms ...Form) {
	for _, f := range forms {
		m.AddAnonymousForm(groupPath, f)
	}
}

// GetForm returns the named form at path.
func (m *Multiform) GetForm(path string) (Form, error) {
	return m.forms.Get(path)
}

// GetForms returns the named forms directly at the group node, in sorted
// key order. The node is created if absent.
func (m *Multiform) GetForms(groupPath string) []Form {
	return m.forms.Subnode(groupPath).Named()
}

// GetAnonymousForms returns the anonymous forms at the group node in
// insertion order. The node is created if absent.
func (m *Multiform) GetAnonymousForms(groupPath string) []Form {
	return m.forms.Subnode(groupPath).Anonymous()
}

// RemoveForm removes the named form at path.
func (m *Multiform) RemoveForm(path string) error {
	return m.forms.Remove(path)
}

// RemoveForms removes named forms in order, stopping at the first failure.
func (m *Multiform) RemoveForms(paths ...string) error {
	for _, p := range paths {
		if err := m.forms.Remove(p); err != nil {
			return err
		}
	}
	return nil
}

// RemoveAnonymousForm removes the first matching anonymous form at the
// group root, searching descendants depth-first when recursive is set.
func (m *Multiform) RemoveAnonymousForm(f Form, recursive bool) bool {
	return m.forms.RemoveAnonymous(f, recursive)
}

// RemoveAnonymousFormAt removes the first matching anonymous form at the
// resolved group node only.
func (m *Multiform) RemoveAnonymousFormAt(groupPath string, f Form) error {
	return m.forms.RemoveAnonymousAt(groupPath, f)
}

// ClearForms empties named and anonymous forms, optionally recursively.
func (m *Multiform) ClearForms(recursive bool) {
	m.forms.Clear(recursive)
}

// ClearNamedForms empties only named forms, optionally recursively.
func (m *Multiform) ClearNamedForms(recursive bool) {
	m.forms.ClearNamed(recursive)
}

// ClearNamedFormsMatching empties named forms whose keys match the pattern.
func (m *Multiform) ClearNamedFormsMatching(pattern string, recursive bool) error {
	return m.forms.ClearNamedMatching(pattern, recursive)
}

// ClearAnonymousForms empties only anonymous forms, optionally recursively.
func (m *Multiform) ClearAnonymousForms(recursive bool) {
	m.forms.ClearAnonymous(recursive)
}
