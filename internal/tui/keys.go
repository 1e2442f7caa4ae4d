// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding

	// list screen
	toggle  key.Binding
	delete  key.Binding
	newItem key.Binding
	refresh key.Binding
	filter  key.Binding

	// detail screen; letters are typed into the inputs there
	save             key.Binding
	addAttachment    key.Binding
	removeAttachment key.Binding
	copyID           key.Binding

	yes key.Binding
	no  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab", "down")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:    key.NewBinding(key.WithKeys("q")),

	toggle:  key.NewBinding(key.WithKeys(" ")),
	delete:  key.NewBinding(key.WithKeys("d")),
	newItem: key.NewBinding(key.WithKeys("n")),
	refresh: key.NewBinding(key.WithKeys("r")),
	filter:  key.NewBinding(key.WithKeys("/")),

	save:             key.NewBinding(key.WithKeys("ctrl+s")),
	addAttachment:    key.NewBinding(key.WithKeys("ctrl+a")),
	removeAttachment: key.NewBinding(key.WithKeys("ctrl+x")),
	copyID:           key.NewBinding(key.WithKeys("ctrl+y")),

	yes: key.NewBinding(key.WithKeys("y")),
	no:  key.NewBinding(key.WithKeys("n")),
}
