package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/display"
	"github.com/vovakirdan/tui-engine/internal/multiform"
	"github.com/vovakirdan/tui-engine/internal/options"
	"github.com/vovakirdan/tui-engine/internal/units/bounce"
	"github.com/vovakirdan/tui-engine/internal/units/menu"
)

// NewEngine wires a complete engine instance: screen buffer, display
// manager backed by a TeaSink, and a unit manager with the built-in units
// registered. Each terminal or SSH session gets its own engine; nothing is
// shared but the options store.
func NewEngine(cfg config.Config, store *options.Store, logger *log.Logger) (Model, error) {
	sink := &TeaSink{}
	disp, err := display.NewManager(sink, store, cfg.Display, logger)
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot create display manager: %w", err)
	}

	res := disp.Resolution()
	screen := core.NewScreen(res.Width, res.Height)

	units := multiform.NewManager(logger)
	if err := units.Register(menu.New(screen)); err != nil {
		return Model{}, fmt.Errorf("tui: cannot register menu unit: %w", err)
	}
	if err := units.Register(bounce.New(screen, disp)); err != nil {
		return Model{}, fmt.Errorf("tui: cannot register bounce unit: %w", err)
	}

	return NewModel(units, disp, screen, sink, cfg), nil
}
