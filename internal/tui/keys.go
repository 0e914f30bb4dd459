package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	esc   key.Binding
	tab   key.Binding
	back  key.Binding
	digit key.Binding
	copy  key.Binding
	yes   key.Binding
	info  key.Binding
}

var keys = keyMap{
	up:    key.NewBinding(key.WithKeys("up", "k")),
	down:  key.NewBinding(key.WithKeys("down", "j")),
	enter: key.NewBinding(key.WithKeys("enter")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	tab:   key.NewBinding(key.WithKeys("tab", "down")),
	back:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	digit: key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7")),
	copy:  key.NewBinding(key.WithKeys("c")),
	yes:   key.NewBinding(key.WithKeys("y", "Y")),
	info:  key.NewBinding(key.WithKeys("v")),
}
