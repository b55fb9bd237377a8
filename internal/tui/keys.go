package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	sync    key.Binding
	retry   key.Binding
	discard key.Binding
	copy    key.Binding
	info    key.Binding
	esc     key.Binding
	enter   key.Binding
	yes     key.Binding
	no      key.Binding
	quit    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	sync:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync now")),
	retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
	discard: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "discard")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy error")),
	info:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "about")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.sync, k.up, k.down, k.retry, k.discard, k.copy, k.info, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
