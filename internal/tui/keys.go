package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter      key.Binding
	historyUp  key.Binding
	historyDn  key.Binding
	scroll     key.Binding
	switchView key.Binding
	closeView  key.Binding
	copy       key.Binding
	quit       key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	historyUp: key.NewBinding(key.WithKeys("up")),
	historyDn: key.NewBinding(key.WithKeys("down")),
	scroll:    key.NewBinding(key.WithKeys("pgup", "pgdown")),
	switchView: key.NewBinding(key.WithKeys(
		"alt+0", "alt+1", "alt+2", "alt+3", "alt+4",
		"alt+5", "alt+6", "alt+7", "alt+8", "alt+9",
	)),
	closeView: key.NewBinding(key.WithKeys("alt+c")),
	copy:      key.NewBinding(key.WithKeys("alt+y")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
}

// viewIndex returns N for an alt+N key.
func viewIndex(k string) (int, bool) {
	if len(k) != len("alt+0") || k[:4] != "alt+" || k[4] < '0' || k[4] > '9' {
		return 0, false
	}
	return int(k[4] - '0'), true
}
