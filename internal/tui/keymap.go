package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the face and the settings menu.
type keyMap struct {
	Toggle   key.Binding
	Work     key.Binding
	Rest     key.Binding
	Settings key.Binding
	Quit     key.Binding

	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Close    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "p"),
			key.WithHelp("space", "pause/resume"),
		),
		Work: key.NewBinding(
			key.WithKeys("w", "down", "j"),
			key.WithHelp("w", "start work"),
		),
		Rest: key.NewBinding(
			key.WithKeys("r", "up", "k"),
			key.WithHelp("r", "start rest"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "change"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "s"),
			key.WithHelp("esc", "done"),
		),
	}
}

// faceHelp and settingsHelp adapt the bindings to help.KeyMap for each view.
type faceHelp struct{ keys keyMap }

func (h faceHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Toggle, h.keys.Work, h.keys.Rest, h.keys.Settings, h.keys.Quit}
}

func (h faceHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

type settingsHelp struct{ keys keyMap }

func (h settingsHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Up, h.keys.Down, h.keys.Activate, h.keys.Close}
}

func (h settingsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
