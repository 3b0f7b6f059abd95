package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-engine/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEscape}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyActions(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key  string
		want core.Action
	}{
		{"w", core.ActionUp},
		{"k", core.ActionUp},
		{"s", core.ActionDown},
		{"a", core.ActionLeft},
		{"d", core.ActionRight},
		{"enter", core.ActionConfirm},
		{"esc", core.ActionBack},
		{"p", core.ActionPause},
		{"x", core.ActionNone},
	}
	for _, tc := range cases {
		got, isQuit := km.MapKey(keyMsg(tc.key))
		if got != tc.want {
			t.Errorf("MapKey(%q) = %v, want %v", tc.key, got, tc.want)
		}
		if isQuit {
			t.Errorf("MapKey(%q) reported quit", tc.key)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	action, isQuit := km.MapKey(keyMsg("q"))
	if !isQuit || action != core.ActionQuit {
		t.Errorf("MapKey(q) = (%v, %v), want quit", action, isQuit)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("w"), &frame) {
		t.Error("w reported as quit")
	}
	if !frame.Has(core.ActionUp) {
		t.Error("frame missing Up after w")
	}
	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("q not reported as quit")
	}
}
