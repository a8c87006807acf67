package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding

	// View switching
	Browse    key.Binding
	Search    key.Binding
	Favorites key.Binding
	Lists     key.Binding
	Stats     key.Binding

	// Actions
	Quit         key.Binding
	Escape       key.Binding
	Refresh      key.Binding
	ToggleFav    key.Binding
	AddToList    key.Binding
	NewList      key.Binding
	Delete       key.Binding
	CycleStatus  key.Binding
	ProgressUp   key.Binding
	ProgressDown key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "focus lists"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "focus books"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Browse: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "browse"),
		),
		Search: key.NewBinding(
			key.WithKeys("2", "/"),
			key.WithHelp("2 or /", "search"),
		),
		Favorites: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "favorites"),
		),
		Lists: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "reading lists"),
		),
		Stats: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "statistics"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		ToggleFav: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle favorite"),
		),
		AddToList: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to list"),
		),
		NewList: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new list"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		CycleStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle status"),
		),
		ProgressUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "progress +10"),
		),
		ProgressDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "progress -10"),
		),
	}
}
