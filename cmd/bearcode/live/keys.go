// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package live

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the live translator's key bindings. Every other key
// goes to the input area.
type KeyMap struct {
	CycleMode        key.Binding
	ToggleDictionary key.Binding
	ScrollUp         key.Binding
	ScrollDown       key.Binding
	Quit             key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	CycleMode: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "mode"),
	),
	ToggleDictionary: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "dictionary"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

func (keys KeyMap) bindings() []key.Binding {
	return []key.Binding{keys.CycleMode, keys.ToggleDictionary, keys.ScrollUp, keys.ScrollDown, keys.Quit}
}
