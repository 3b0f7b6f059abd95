// Package config provides YAML-based configuration loading for the engine:
// display defaults, display constraints, and loop settings.
package config

// Config is the top-level engine configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Engine  EngineConfig  `yaml:"engine"`
}

// DisplayConfig defines the initial window state and the constraints the
// display manager enforces.
type DisplayConfig struct {
	Width        int  `yaml:"width"`
	Height       int  `yaml:"height"`
	Fullscreen   bool `yaml:"fullscreen"`
	Borderless   bool `yaml:"borderless"`
	VSync        bool `yaml:"vsync"`
	MouseVisible bool `yaml:"mouse_visible"`

	// Fixed lists display properties pinned by the host configuration;
	// toggling one fails. Valid entries: fullscreen, borderless, vsync,
	// mouse_visibility, resolution.
	Fixed []string `yaml:"fixed"`

	// Orientation constrains accepted resolutions: any, landscape, or
	// portrait.
	Orientation string `yaml:"orientation"`

	// StaticResolution rejects every resolution change after startup.
	StaticResolution bool `yaml:"static_resolution"`
}

// EngineConfig defines loop settings.
type EngineConfig struct {
	// TickRate is the simulation tick rate in ticks per second.
	TickRate int `yaml:"tick_rate"`

	// StartUnit names the multiform activated on startup.
	StartUnit string `yaml:"start_unit"`
}
