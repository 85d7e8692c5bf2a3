package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	quit    key.Binding
	newSale key.Binding
	pay     key.Binding
	sync    key.Binding
	refresh key.Binding
	copy    key.Binding
	plus    key.Binding
	minus   key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newSale: key.NewBinding(key.WithKeys("n")),
	pay:     key.NewBinding(key.WithKeys("p")),
	sync:    key.NewBinding(key.WithKeys("s")),
	refresh: key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("c")),
	plus:    key.NewBinding(key.WithKeys("+", "=")),
	minus:   key.NewBinding(key.WithKeys("-")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
