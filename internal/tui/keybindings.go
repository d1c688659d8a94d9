package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the product list view.
type KeyMap struct {
	Open     key.Binding
	New      key.Binding
	Delete   key.Binding
	Search   key.Binding
	Refresh  key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new product"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "["),
			key.WithHelp("←/[", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "]"),
			key.WithHelp("→/]", "next page"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the list's help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.New, k.Delete, k.Search, k.PrevPage, k.NextPage, k.Refresh, k.Quit}
}
