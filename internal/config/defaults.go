package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// Default returns the hardcoded default configuration, used when even the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Width:        80,
			Height:       24,
			Fullscreen:   true,
			Borderless:   false,
			VSync:        true,
			MouseVisible: false,
			Orientation:  "any",
		},
		Engine: EngineConfig{
			TickRate:  60,
			StartUnit: "menu",
		},
	}
}

// DefaultYAML returns the embedded default configuration source.
func DefaultYAML() []byte {
	return defaultEngineYAML
}
