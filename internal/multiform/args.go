package multiform

// ConstructionArgs carries opaque key/value parameters from the manager to
// a unit's Construct and Reconstruct hooks. Keys are unit-defined; the
// engine itself only passes them through.
type ConstructionArgs map[string]any

// Value returns the raw value for key.
func (a ConstructionArgs) Value(key string) (any, bool) {
	v, ok := a[key]
	return v, ok
}

// String returns the string value for key, or def when absent or of
// another type.
func (a ConstructionArgs) String(key, def string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return def
}

// Int returns the int value for key, or def when absent or of another type.
func (a ConstructionArgs) Int(key string, def int) int {
	if v, ok := a[key].(int); ok {
		return v
	}
	return def
}

// Bool returns the bool value for key, or def when absent or of another
// type.
func (a ConstructionArgs) Bool(key string, def bool) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}
	return def
}
