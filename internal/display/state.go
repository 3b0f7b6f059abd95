package display

import "github.com/vovakirdan/tui-engine/internal/config"

// Property identifies a toggleable display property.
type Property string

const (
	PropertyFullscreen      Property = "fullscreen"
	PropertyBorderless      Property = "borderless"
	PropertyVSync           Property = "vsync"
	PropertyMouseVisibility Property = "mouse_visibility"
	PropertyResolution      Property = "resolution"
)

// WindowState is the full flag set pushed to the native window sink on
// every change.
type WindowState struct {
	Resolution   Resolution
	Fullscreen   bool
	Borderless   bool
	VSync        bool
	MouseVisible bool
}

// WindowSink is the boundary to the native windowing layer. Apply receives
// the complete desired state and acknowledges by returning nil.
type WindowSink interface {
	Apply(state WindowState) error
}

// NopSink acknowledges every state without doing anything. Useful for
// headless commands and tests.
type NopSink struct{}

func (NopSink) Apply(WindowState) error { return nil }

// Orientation constrains which resolutions the manager accepts.
type Orientation string

const (
	OrientationAny       Orientation = "any"
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
)

// Constraints are the host-configured limits on display changes.
type Constraints struct {
	Fixed            map[Property]bool
	Orientation      Orientation
	StaticResolution bool
}

// ConstraintsFromConfig translates the YAML display section into runtime
// constraints. Unknown fixed-property names are ignored.
func ConstraintsFromConfig(cfg config.DisplayConfig) Constraints {
	c := Constraints{
		Fixed:            make(map[Property]bool),
		Orientation:      Orientation(cfg.Orientation),
		StaticResolution: cfg.StaticResolution,
	}
	if c.Orientation == "" {
		c.Orientation = OrientationAny
	}
	known := map[Property]bool{
		PropertyFullscreen:      true,
		PropertyBorderless:      true,
		PropertyVSync:           true,
		PropertyMouseVisibility: true,
		PropertyResolution:      true,
	}
	for _, name := range cfg.Fixed {
		p := Property(name)
		if known[p] {
			c.Fixed[p] = true
		}
	}
	return c
}
