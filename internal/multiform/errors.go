package multiform

import "fmt"

// UnsetRendererError is returned by Render when no renderer has ever been
// installed with SetRenderer.
type UnsetRendererError struct {
	Multiform string
}

func (e *UnsetRendererError) Error() string {
	return fmt.Sprintf("multiform: %q has no renderer set", e.Multiform)
}

// AlreadyRegisteredError is returned when a multiform is registered twice,
// or when another multiform already claimed the same name.
type AlreadyRegisteredError struct {
	Name string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("multiform: %q already registered", e.Name)
}

// NotRegisteredError is returned by operations that require a manager
// back-reference before PostRegister has been called.
type NotRegisteredError struct {
	Name string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("multiform: %q is not registered with a manager", e.Name)
}
