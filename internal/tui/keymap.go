package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor keyboard shortcuts.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	CycleLeft  key.Binding
	CycleRight key.Binding
	Activate   key.Binding
	SaveQuit   key.Binding
	Abandon    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("Tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("Shift+Tab/↑", "previous field"),
		),
		CycleLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous option"),
		),
		CycleRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next option"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "toggle/activate"),
		),
		SaveQuit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "save and exit"),
		),
		Abandon: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "discard pending and exit"),
		),
	}
}

// ShortHelp returns key bindings for the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.CycleRight, k.Activate, k.SaveQuit, k.Abandon}
}

// FullHelp returns all key bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.CycleLeft, k.CycleRight, k.Activate},
		{k.SaveQuit, k.Abandon},
	}
}
