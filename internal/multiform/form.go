package multiform

import "github.com/vovakirdan/tui-engine/internal/uritree"

// Form is a leaf item owned by exactly one multiform at a time. Concrete
// forms embed BaseForm, which provides the whole interface; the unexported
// bind method keeps ownership transfer inside this package.
//
// A form with an empty name is anonymous: it has no lookup key and is
// retrievable only through group membership.
type Form interface {
	// Name returns the form's lookup key, or "" for anonymous forms.
	Name() string

	// Anonymous reports whether the form has no lookup key.
	Anonymous() bool

	// Parent returns the multiform that owns this form, or nil before the
	// form has been added anywhere.
	Parent() *Multiform

	bind(owner *Multiform)
}

// BaseForm is the embeddable Form implementation.
type BaseForm struct {
	// FormName is the lookup key. Leave empty for anonymous forms.
	FormName string

	owner *Multiform
}

// Name returns the form's lookup key.
func (f *BaseForm) Name() string {
	return f.FormName
}

// Anonymous reports whether the form has no lookup key.
func (f *BaseForm) Anonymous() bool {
	return f.FormName == ""
}

// Parent returns the owning multiform.
func (f *BaseForm) Parent() *Multiform {
	return f.owner
}

func (f *BaseForm) bind(owner *Multiform) {
	f.owner = owner
}

// FormGroup is the hierarchical registry of forms owned by one multiform.
// It is a uritree specialization; all tree operations apply directly.
type FormGroup struct {
	*uritree.Tree[Form]
}

// NewFormGroup creates an empty form group.
func NewFormGroup() *FormGroup {
	return &FormGroup{Tree: uritree.New[Form]()}
}
