package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit   key.Binding
	Help   key.Binding
	Escape key.Binding

	// Actions
	OpenFile key.Binding
	Refresh  key.Binding
	FontSize key.Binding
	BgColor  key.Binding

	// Input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "e", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),

		OpenFile: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Open log file"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh now"),
		),
		FontSize: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Font size"),
		),
		BgColor: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Background color"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the footer hint line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenFile, k.Refresh, k.FontSize, k.BgColor, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.OpenFile, k.Refresh},
		{k.FontSize, k.BgColor},
		{k.Help, k.Escape, k.Quit},
	}
}
