package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultBindings(t *testing.T) {
	tests := []struct {
		msg     tea.KeyMsg
		binding key.Binding
		name    string
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, Default.Prev, "up"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, Default.Prev, "k"},
		{tea.KeyMsg{Type: tea.KeyDown}, Default.Next, "down"},
		{tea.KeyMsg{Type: tea.KeyRight}, Default.Next, "right"},
		{tea.KeyMsg{Type: tea.KeyEnter}, Default.Select, "enter"},
		{tea.KeyMsg{Type: tea.KeySpace}, Default.Select, "space"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, Default.Rescan, "r"},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, Default.Quit, "ctrl+c"},
	}

	for _, tt := range tests {
		if !key.Matches(tt.msg, tt.binding) {
			t.Errorf("%s should match its binding", tt.name)
		}
	}
}

func TestButtonsDoNotOverlap(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyUp}
	if key.Matches(msg, Default.Next) || key.Matches(msg, Default.Select) {
		t.Error("up must only match Prev")
	}
}

func TestShortHelp(t *testing.T) {
	if len(Default.ShortHelp()) != 4 {
		t.Errorf("expected 4 short-help bindings, got %d", len(Default.ShortHelp()))
	}
}
