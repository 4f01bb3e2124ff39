package tui

import (
	"github.com/joeri-hu/tracktune/internal/config"
	"github.com/joeri-hu/tracktune/internal/menu"
	"github.com/joeri-hu/tracktune/internal/setting"
)

// Keys reserved for app commands.
const (
	keyQuit   = 'q'
	keyReload = 'r'
	keySave   = 's'
)

// keyring lists the keys available for binding settings, in assignment
// order. The reserved command keys are left out.
const keyring = "abcdefghijklmnoptuvwxyz0123456789"

// BuildMenu binds every setting in the tree to a key, in Items order.
// action, when not nil, runs after a value is applied to the setting it
// receives. Settings beyond the keyring are left unbound.
func BuildMenu(cfg *config.Config, action func(*setting.Setting)) *menu.Menu {
	m := menu.New()
	for i, item := range cfg.Items() {
		if i >= len(keyring) {
			break
		}
		var fn func()
		if action != nil {
			fn = func() { action(item) }
		}
		m.Add(keyring[i], item, fn)
	}
	return m
}
