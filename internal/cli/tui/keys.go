package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keybindings
type KeyMap struct {
	Open       key.Binding
	Close      key.Binding
	Next       key.Binding
	Prev       key.Binding
	Submit     key.Binding
	TryAnother key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open tool"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "generate"),
		),
		TryAnother: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "try another"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Close, k.Submit, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Close, k.Next, k.Prev},
		{k.Submit, k.TryAnother},
		{k.Help, k.Quit},
	}
}
