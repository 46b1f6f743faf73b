package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap is the set of bindings for the country list.
type KeyMap struct {
	ToggleSmall   key.Binding
	ToggleOceania key.Binding
	ToggleSort    key.Binding
	Previous      key.Binding
	Next          key.Binding
	First         key.Binding
	Last          key.Binding
	JumpToPage    key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleSmall: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle small areas"),
		),
		ToggleOceania: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "toggle Oceania"),
		),
		ToggleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle sort"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous page"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last page"),
		),
		JumpToPage: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("0-9 enter", "go to page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleSmall, k.ToggleOceania, k.ToggleSort, k.Previous, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleSmall, k.ToggleOceania, k.ToggleSort},
		{k.Previous, k.Next, k.First, k.Last, k.JumpToPage},
		{k.Quit},
	}
}
