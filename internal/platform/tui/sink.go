package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-engine/internal/display"
)

// TeaSink mirrors window state into the Bubble Tea program. The display
// manager pushes whole states through Apply; the model drains the resulting
// terminal commands with TakeCommands after every display operation.
//
// Fullscreen maps to the alternate screen buffer, mouse visibility to mouse
// reporting (a captured mouse is an invisible one). Resolution changes
// originate from the terminal itself and need no command; vsync only affects
// tick pacing.
type TeaSink struct {
	cur     display.WindowState
	applied display.WindowState
	primed  bool
}

// Apply records the desired window state. It never fails: the terminal
// cannot reject a state, only lag behind it.
func (s *TeaSink) Apply(state display.WindowState) error {
	s.cur = state
	return nil
}

// State returns the last applied window state.
func (s *TeaSink) State() display.WindowState {
	return s.cur
}

// TakeCommands returns the Bubble Tea commands needed to bring the terminal
// in line with the last applied state. The first call emits the absolute
// state; later calls emit only transitions.
func (s *TeaSink) TakeCommands() []tea.Cmd {
	var cmds []tea.Cmd

	if !s.primed || s.cur.Fullscreen != s.applied.Fullscreen {
		if s.cur.Fullscreen {
			cmds = append(cmds, tea.EnterAltScreen)
		} else {
			cmds = append(cmds, tea.ExitAltScreen)
		}
	}
	if !s.primed || s.cur.MouseVisible != s.applied.MouseVisible {
		if s.cur.MouseVisible {
			cmds = append(cmds, tea.DisableMouse)
		} else {
			cmds = append(cmds, tea.EnableMouseCellMotion)
		}
	}

	s.applied = s.cur
	s.primed = true
	return cmds
}
