package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the drill screens.
type KeyMap struct {
	Submit key.Binding
	Yes    key.Binding
	No     key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "another"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "enter"),
			key.WithHelp("n", "finish"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// inputKeys is the help shown while a question is open.
type inputKeys struct{ km KeyMap }

func (k inputKeys) ShortHelp() []key.Binding  { return []key.Binding{k.km.Submit, k.km.Quit} }
func (k inputKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// confirmKeys is the help shown while asking whether to go again.
type confirmKeys struct{ km KeyMap }

func (k confirmKeys) ShortHelp() []key.Binding  { return []key.Binding{k.km.Yes, k.km.No, k.km.Quit} }
func (k confirmKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// doneKeys is the help shown once a single-shot screen has its result.
type doneKeys struct{ km KeyMap }

func (k doneKeys) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "exit")),
	}
}
func (k doneKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
