package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-engine/internal/display"
)

// SettingsKeyMap defines the key bindings for the display settings overlay.
type SettingsKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Fullscreen key.Binding
	Borderless key.Binding
	VSync      key.Binding
	Mouse      key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fullscreen, k.Borderless, k.VSync, k.Mouse, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Fullscreen, k.Borderless, k.VSync, k.Mouse},
		{k.Back, k.Quit},
	}
}

// DefaultSettingsKeyMap returns default key bindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		Borderless: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "borderless"),
		),
		VSync: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "vsync"),
		),
		Mouse: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mouse"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "o"),
			key.WithHelp("esc/o", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SettingsModel is the display settings overlay: a table of window
// properties with toggle keys. Toggles go through the display manager, so
// fixed properties fail with a visible error instead of silently flipping.
type SettingsModel struct {
	disp   *display.Manager
	table  table.Model
	help   help.Model
	keys   SettingsKeyMap
	status string
}

// NewSettingsModel creates the overlay over the given display manager.
func NewSettingsModel(disp *display.Manager) *SettingsModel {
	h := help.New()
	h.ShowAll = false

	m := &SettingsModel{
		disp: disp,
		help: h,
		keys: DefaultSettingsKeyMap(),
	}
	m.table = m.createTable()
	m.refresh()
	return m
}

// createTable creates the property table.
func (m *SettingsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Property", Width: 16},
		{Title: "Value", Width: 12},
		{Title: "Fixed", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(7),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// refresh rebuilds the table rows from the current window state.
func (m *SettingsModel) refresh() {
	state := m.disp.State()
	fixed := m.disp.Constraints().Fixed

	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	lock := func(p display.Property) string {
		if fixed[p] {
			return "yes"
		}
		return ""
	}

	m.table.SetRows([]table.Row{
		{"resolution", state.Resolution.String(), lock(display.PropertyResolution)},
		{"fullscreen", onOff(state.Fullscreen), lock(display.PropertyFullscreen)},
		{"borderless", onOff(state.Borderless), lock(display.PropertyBorderless)},
		{"vsync", onOff(state.VSync), lock(display.PropertyVSync)},
		{"mouse visible", onOff(state.MouseVisible), lock(display.PropertyMouseVisibility)},
	})
}

// HandleKey processes a key press. Returns true when the overlay should
// close; the returned command feeds the table's own scrolling.
func (m *SettingsModel) HandleKey(msg tea.KeyMsg) (closed bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return true, nil

	case key.Matches(msg, m.keys.Fullscreen):
		m.toggle("fullscreen", m.disp.ToggleFullscreen)
	case key.Matches(msg, m.keys.Borderless):
		m.toggle("borderless", m.disp.ToggleBorderless)
	case key.Matches(msg, m.keys.VSync):
		m.toggle("vsync", m.disp.ToggleVSync)
	case key.Matches(msg, m.keys.Mouse):
		m.toggle("mouse visibility", m.disp.ToggleMouseVisibility)

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		m.table, cmd = m.table.Update(msg)
	}
	return false, cmd
}

// toggle runs a display toggle and reports the result in the status line.
func (m *SettingsModel) toggle(name string, fn func() error) {
	if err := fn(); err != nil {
		m.status = err.Error()
	} else {
		m.status = fmt.Sprintf("%s toggled", name)
	}
	m.refresh()
}

// View renders the overlay.
func (m *SettingsModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("DISPLAY SETTINGS"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Italic(true)
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}
