package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Submit    key.Binding
	Up        key.Binding
	Down      key.Binding
	Delete    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "yes"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// formHelp is shown while one of the text fields has focus.
type formHelp keyMap

func (k formHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.ForceQuit}
}

func (k formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// listHelp is shown while the contact list has focus.
type listHelp keyMap

func (k listHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Next, k.Quit}
}

func (k listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// confirmHelp is shown while a confirmation is pending.
type confirmHelp keyMap

func (k confirmHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k confirmHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
