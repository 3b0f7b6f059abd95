package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/display"
	"github.com/vovakirdan/tui-engine/internal/multiform"
)

// ActionHandler is implemented by units that react to mapped input.
type ActionHandler interface {
	HandleAction(core.Action)
}

// Updater is implemented by units that advance state on simulation ticks.
type Updater interface {
	Update()
}

// Model is the Bubble Tea model driving the engine: keys buffer into an
// input frame, ticks deliver the frame to the active unit and step it, and
// View renders its screen buffer.
type Model struct {
	units    *multiform.Manager
	disp     *display.Manager
	screen   *core.Screen
	sink     *TeaSink
	keys     *KeyMapper
	frame    core.InputFrame
	cfg      config.Config
	settings *SettingsModel
	quitting bool
}

// frameOrder fixes the delivery order of buffered actions within a tick.
var frameOrder = []core.Action{
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
	core.ActionConfirm,
	core.ActionBack,
	core.ActionPause,
}

// NewModel creates a model over an already wired engine. The start unit is
// activated on Init.
func NewModel(units *multiform.Manager, disp *display.Manager, screen *core.Screen, sink *TeaSink, cfg config.Config) Model {
	return Model{
		units:  units,
		disp:   disp,
		screen: screen,
		sink:   sink,
		keys:   NewKeyMapper(),
		frame:  core.NewInputFrame(),
		cfg:    cfg,
	}
}

// Units returns the unit manager, for inspection outside the loop.
func (m Model) Units() *multiform.Manager {
	return m.units
}

// Init activates the start unit and begins the tick loop.
func (m Model) Init() tea.Cmd {
	args := multiform.ConstructionArgs{"seed": int(time.Now().UnixNano())}
	if err := m.units.Activate(m.cfg.Engine.StartUnit, args); err != nil {
		return tea.Quit
	}

	cmds := append(m.sink.TakeCommands(), tickCmd(m.tickRate()))
	return tea.Batch(cmds...)
}

// tickRate derives the pacing from the vsync flag: paced at the configured
// rate when on, uncapped when off.
func (m Model) tickRate() int {
	if m.disp != nil && !m.disp.VSync() {
		return uncappedTickRate
	}
	return m.cfg.Engine.TickRate
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. While the settings overlay is open it
// owns all keys; otherwise mapped actions buffer into the input frame and
// reach the active unit on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.settings != nil {
		closed, cmd := m.settings.HandleKey(msg)
		if closed {
			m.settings = nil
		}
		cmds := append(m.sink.TakeCommands(), cmd)
		return m, tea.Batch(cmds...)
	}

	if msg.String() == "o" {
		m.settings = NewSettingsModel(m.disp)
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize forwards the terminal size to the display manager. When the
// host constraints reject the size (static or orientation-locked displays)
// the buffer keeps its dimensions and the view letterboxes instead.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	r := display.Resolution{Width: msg.Width, Height: msg.Height}
	if !m.disp.Borderless() {
		// The frame costs one cell on each side.
		r.Width -= 2
		r.Height -= 2
	}

	if err := m.disp.SetResolution(r); err != nil {
		return m, nil
	}
	m.screen.Resize(r.Width, r.Height)
	return m, nil
}

// handleTick delivers the buffered input frame to the active unit, steps
// it, and schedules the next tick. Unit-initiated display changes are
// flushed to the terminal here.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if h, ok := m.units.ActiveUnit().(ActionHandler); ok {
		for _, a := range frameOrder {
			if m.frame.Has(a) {
				h.HandleAction(a)
			}
		}
	}
	m.frame.Clear()

	if u, ok := m.units.ActiveUnit().(Updater); ok {
		u.Update()
	}

	cmds := append(m.sink.TakeCommands(), tickCmd(m.tickRate()))
	return m, tea.Batch(cmds...)
}

// View renders the settings overlay or the active unit's screen buffer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.settings != nil {
		return m.settings.View()
	}

	active := m.units.Active()
	if active == nil {
		return ""
	}
	//nolint:errcheck // a unit without a renderer shows its last buffer
	active.Render()
	return FrameScreen(m.screen, m.disp.Borderless())
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(model)
	_, err := p.Run()
	return err
}
