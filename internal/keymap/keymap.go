// Package keymap maps terminal keys onto the three-button control
// surface plus the host-only actions.
package keymap

import "github.com/charmbracelet/bubbles/key"

// Map holds one binding per action. The three button bindings mirror the
// device buttons; the rest exist only on the terminal host.
type Map struct {
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Rescan key.Binding
	Quit   key.Binding
}

// Default is the standard key map.
var Default = Map{
	Prev: key.NewBinding(
		key.WithKeys("up", "left", "k"),
		key.WithHelp("↑/←", "prev"),
	),
	Next: key.NewBinding(
		key.WithKeys("down", "right", "j"),
		key.WithHelp("↓/→", "next"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	Rescan: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rescan music dir"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns the bindings shown in a one-line help view.
func (m Map) ShortHelp() []key.Binding {
	return []key.Binding{m.Prev, m.Next, m.Select, m.Quit}
}
