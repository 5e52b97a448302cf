package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextScheme   key.Binding
	PrevScheme   key.Binding
	PickScheme   key.Binding
	NextTemplate key.Binding
	PrevTemplate key.Binding
	Toggle       key.Binding
	ToggleNow    key.Binding
	Reset        key.Binding
	CSS          key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextScheme: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s/S", "scheme"),
		),
		PrevScheme: key.NewBinding(
			key.WithKeys("S"),
		),
		PickScheme: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "pick scheme"),
		),
		NextTemplate: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("←/→", "template"),
		),
		PrevTemplate: key.NewBinding(
			key.WithKeys("left", "h"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "light/dark"),
		),
		ToggleNow: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "switch instantly"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "follow system"),
		),
		CSS: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "css"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextScheme, k.NextTemplate, k.Toggle, k.CSS, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextScheme, k.PickScheme, k.NextTemplate},
		{k.Toggle, k.ToggleNow, k.Reset},
		{k.CSS, k.Help, k.Quit},
	}
}
