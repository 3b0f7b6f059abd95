package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/observe"
	"github.com/vovakirdan/tui-engine/internal/options"
)

// Option store keys for persisted display state.
const (
	keyFullscreen   = "display.fullscreen"
	keyBorderless   = "display.borderless"
	keyVSync        = "display.vsync"
	keyMouseVisible = "display.mouse_visible"
	keyWidth        = "display.width"
	keyHeight       = "display.height"
)

// Manager owns the window state. All operations run on the engine's single
// logical update thread; the manager is not safe for concurrent use.
type Manager struct {
	sink        WindowSink
	opts        *options.Store
	logger      *log.Logger
	state       WindowState
	constraints Constraints
	listeners   *observe.Set[*ResolutionListener]
}

// NewManager builds a manager from the display configuration. Persisted
// options, when a store is given, override the configured defaults. The
// initial state is pushed to the sink once.
func NewManager(sink WindowSink, opts *options.Store, cfg config.DisplayConfig, logger *log.Logger) (*Manager, error) {
	if sink == nil {
		sink = NopSink{}
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "display"})
	}

	m := &Manager{
		sink:   sink,
		opts:   opts,
		logger: logger,
		state: WindowState{
			Resolution:   Resolution{Width: cfg.Width, Height: cfg.Height},
			Fullscreen:   cfg.Fullscreen,
			Borderless:   cfg.Borderless,
			VSync:        cfg.VSync,
			MouseVisible: cfg.MouseVisible,
		},
		constraints: ConstraintsFromConfig(cfg),
		listeners:   observe.NewSet[*ResolutionListener](),
	}
	m.restore()

	if err := m.sink.Apply(m.state); err != nil {
		return nil, fmt.Errorf("display: cannot apply initial state: %w", err)
	}
	return m, nil
}

// restore overlays persisted options onto the configured defaults.
// Best-effort: store errors are logged and the defaults stand.
func (m *Manager) restore() {
	if m.opts == nil {
		return
	}
	read := func(key string, def bool) bool {
		v, err := m.opts.GetBool(key, def)
		if err != nil {
			m.logger.Warn("cannot restore option", "key", key, "error", err)
			return def
		}
		return v
	}
	m.state.Fullscreen = read(keyFullscreen, m.state.Fullscreen)
	m.state.Borderless = read(keyBorderless, m.state.Borderless)
	m.state.VSync = read(keyVSync, m.state.VSync)
	m.state.MouseVisible = read(keyMouseVisible, m.state.MouseVisible)

	if w, err := m.opts.GetInt(keyWidth, m.state.Resolution.Width); err == nil && w > 0 {
		m.state.Resolution.Width = w
	}
	if h, err := m.opts.GetInt(keyHeight, m.state.Resolution.Height); err == nil && h > 0 {
		m.state.Resolution.Height = h
	}
}

// State returns a copy of the current window state.
func (m *Manager) State() WindowState { return m.state }

// Resolution returns the current resolution.
func (m *Manager) Resolution() Resolution { return m.state.Resolution }

// Fullscreen reports the fullscreen flag.
func (m *Manager) Fullscreen() bool { return m.state.Fullscreen }

// Borderless reports the borderless flag.
func (m *Manager) Borderless() bool { return m.state.Borderless }

// VSync reports the vsync flag.
func (m *Manager) VSync() bool { return m.state.VSync }

// MouseVisible reports the mouse visibility flag.
func (m *Manager) MouseVisible() bool { return m.state.MouseVisible }

// Constraints returns the host constraints in effect.
func (m *Manager) Constraints() Constraints { return m.constraints }

// SetResolution validates and applies a resolution change, then notifies
// registered listeners with the frozen (previous, current, scale) tuple.
// Setting the current resolution again is a no-op.
func (m *Manager) SetResolution(r Resolution) error {
	if r == m.state.Resolution {
		return nil
	}
	if err := m.validateResolution(r); err != nil {
		return err
	}

	previous := m.state.Resolution
	m.state.Resolution = r
	if err := m.push(); err != nil {
		m.state.Resolution = previous
		return err
	}
	m.persistResolution(r)
	m.logger.Info("resolution changed", "from", previous, "to", r)
	m.notifyResolutionChanged(previous, r)
	return nil
}

func (m *Manager) validateResolution(r Resolution) error {
	if r.Width <= 0 || r.Height <= 0 {
		return &InvalidResolutionError{Resolution: r, Reason: "non-positive dimensions"}
	}
	if m.constraints.Fixed[PropertyResolution] {
		return &UntoggleablePropertyError{Property: PropertyResolution}
	}
	if m.constraints.StaticResolution {
		return &InvalidResolutionError{Resolution: r, Reason: "resolution is static"}
	}
	switch m.constraints.Orientation {
	case OrientationLandscape:
		if !r.IsLandscape() {
			return &InvalidResolutionError{Resolution: r, Reason: "landscape-only host"}
		}
	case OrientationPortrait:
		if !r.IsPortrait() {
			return &InvalidResolutionError{Resolution: r, Reason: "portrait-only host"}
		}
	}
	return nil
}

// SetFullscreen sets the fullscreen flag.
func (m *Manager) SetFullscreen(v bool) error {
	return m.setFlag(PropertyFullscreen, keyFullscreen, &m.state.Fullscreen, v)
}

// ToggleFullscreen flips the fullscreen flag.
func (m *Manager) ToggleFullscreen() error {
	return m.SetFullscreen(!m.state.Fullscreen)
}

// SetBorderless sets the borderless flag.
func (m *Manager) SetBorderless(v bool) error {
	return m.setFlag(PropertyBorderless, keyBorderless, &m.state.Borderless, v)
}

// ToggleBorderless flips the borderless flag.
func (m *Manager) ToggleBorderless() error {
	return m.SetBorderless(!m.state.Borderless)
}

// SetVSync sets the vsync flag.
func (m *Manager) SetVSync(v bool) error {
	return m.setFlag(PropertyVSync, keyVSync, &m.state.VSync, v)
}

// ToggleVSync flips the vsync flag.
func (m *Manager) ToggleVSync() error {
	return m.SetVSync(!m.state.VSync)
}

// SetMouseVisible sets the mouse visibility flag.
func (m *Manager) SetMouseVisible(v bool) error {
	return m.setFlag(PropertyMouseVisibility, keyMouseVisible, &m.state.MouseVisible, v)
}

// ToggleMouseVisibility flips the mouse visibility flag.
func (m *Manager) ToggleMouseVisibility() error {
	return m.SetMouseVisible(!m.state.MouseVisible)
}

func (m *Manager) setFlag(prop Property, key string, field *bool, v bool) error {
	if m.constraints.Fixed[prop] {
		return &UntoggleablePropertyError{Property: prop}
	}
	if *field == v {
		return nil
	}
	old := *field
	*field = v
	if err := m.push(); err != nil {
		*field = old
		return err
	}
	m.persistBool(key, v)
	m.logger.Info("display property changed", "property", prop, "value", v)
	return nil
}

// push applies the full current state to the sink.
func (m *Manager) push() error {
	if err := m.sink.Apply(m.state); err != nil {
		return fmt.Errorf("display: sink rejected state: %w", err)
	}
	return nil
}

func (m *Manager) persistBool(key string, v bool) {
	if m.opts == nil {
		return
	}
	if err := m.opts.SetBool(key, v); err != nil {
		m.logger.Warn("cannot persist option", "key", key, "error", err)
	}
}

func (m *Manager) persistResolution(r Resolution) {
	if m.opts == nil {
		return
	}
	if err := m.opts.SetInt(keyWidth, r.Width); err != nil {
		m.logger.Warn("cannot persist option", "key", keyWidth, "error", err)
	}
	if err := m.opts.SetInt(keyHeight, r.Height); err != nil {
		m.logger.Warn("cannot persist option", "key", keyHeight, "error", err)
	}
}

// RegisterResolutionListener adds a listener handle. Registration from
// inside a notification callback takes effect after the current pass.
func (m *Manager) RegisterResolutionListener(l *ResolutionListener) {
	m.listeners.Register(l)
}

// RemoveResolutionListener removes a listener handle. Removal from inside
// a notification callback takes effect after the current pass.
func (m *Manager) RemoveResolutionListener(l *ResolutionListener) {
	m.listeners.Remove(l)
}

// notifyResolutionChanged runs one notification pass. Every listener in
// the frozen set observes the same tuple.
func (m *Manager) notifyResolutionChanged(previous, current Resolution) {
	scale := 1.0
	if previous.Width > 0 {
		scale = float64(current.Width) / float64(previous.Width)
	}
	m.listeners.Notify(func(l *ResolutionListener) {
		if l.OnResolutionChanged != nil {
			l.OnResolutionChanged(previous, current, scale)
		}
	})
}
