package display

import "fmt"

// UntoggleablePropertyError is returned when changing a display property
// the host configuration marked fixed.
type UntoggleablePropertyError struct {
	Property Property
}

func (e *UntoggleablePropertyError) Error() string {
	return fmt.Sprintf("display: property %q is fixed by configuration", e.Property)
}

// InvalidResolutionError is returned when a requested resolution violates
// an orientation or static-resolution constraint.
type InvalidResolutionError struct {
	Resolution Resolution
	Reason     string
}

func (e *InvalidResolutionError) Error() string {
	return fmt.Sprintf("display: resolution %s rejected: %s", e.Resolution, e.Reason)
}
