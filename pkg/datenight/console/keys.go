package console

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Previous key.Binding
	Up       key.Binding
	Down     key.Binding
	Reset    key.Binding
	Help     key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func newKeyMap(endless bool) keyMap {
	k := keyMap{
		Next:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		Previous: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "back")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "+1")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "-1")),
		Reset:    key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter", "start over")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	if endless {
		k.Previous.SetHelp("←", "another")
		k.Next.SetHelp("→", "another")
		k.Up.SetHelp("↑", "like")
		k.Down.SetHelp("↓", "new topic")
		k.Reset.SetEnabled(false)
	}
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Up, k.Down, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.Up, k.Down},
		{k.Reset, k.Help, k.Close, k.Quit},
	}
}
