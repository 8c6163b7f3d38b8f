package ui

import "github.com/charmbracelet/bubbles/key"

// WatchKeys are the key bindings of the watch screen
type WatchKeys struct {
	Down     key.Binding
	Help     key.Binding
	Loop     key.Binding
	PauseAll key.Binding
	Quit     key.Binding
	Refresh  key.Binding
	Resume   key.Binding
	Up       key.Binding
}

// NewWatchKeys returns the default watch bindings
func NewWatchKeys() WatchKeys {
	return WatchKeys{
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next playlist")),
		Help:     key.NewBinding(key.WithKeys("?", "h"), key.WithHelp("?", "toggle help")),
		Loop:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "toggle loop")),
		PauseAll: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause everything")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Refresh:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
		Resume:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resume paused")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous playlist")),
	}
}

// ShortHelp implements help.KeyMap
func (k WatchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.PauseAll, k.Resume, k.Loop, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k WatchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh},
		{k.PauseAll, k.Resume, k.Loop},
		{k.Help, k.Quit},
	}
}
