// Package store persists settings through a key/value text boundary:
// tagnames map to canonical text values. Two backends exist, a TOML file
// and a SQLite database; both buffer values in memory and write on Flush.
package store

import "github.com/joeri-hu/tracktune/internal/setting"

// Store is the boundary settings persist through. Keys are setting
// tagnames, values their canonical text forms.
type Store interface {
	// Get returns the stored value for key, or fallback when absent.
	Get(key, fallback string) string
	// Set stores value under key, replacing any previous value.
	Set(key, value string)
}

// Item is what a persisted setting must provide. *setting.Setting
// satisfies it.
type Item interface {
	Tagname() string
	String() string
	SetText(string)
}

// Items adapts a slice of settings for Save and Load.
func Items(settings []*setting.Setting) []Item {
	items := make([]Item, len(settings))
	for i, s := range settings {
		items[i] = s
	}
	return items
}

// Save writes every item's current text under its tagname.
func Save(st Store, items []Item) {
	for _, it := range items {
		st.Set(it.Tagname(), it.String())
	}
}

// Load feeds every item the text stored under its tagname. The item's
// current text doubles as the fallback, so an absent key leaves the item
// unchanged.
func Load(st Store, items []Item) {
	for _, it := range items {
		it.SetText(st.Get(it.Tagname(), it.String()))
	}
}
