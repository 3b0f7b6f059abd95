// Package tui provides the Bubble Tea integration for the engine. It runs
// the terminal loop, maps keys to actions, drives the active unit's update
// and render hooks, and mirrors display state to the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an engine simulation tick.
type TickMsg time.Time

// uncappedTickRate is used when frame pacing (vsync) is off.
const uncappedTickRate = 240

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
