// Package menu implements the key-addressable menu the tuning console is
// driven through: bindings from single-byte keys to settings, collected
// in an ordered menu with a single selection cursor.
package menu

import (
	"fmt"

	"github.com/joeri-hu/tracktune/internal/setting"
)

// Display column widths for a binding line. Presentation convention only;
// they keep multi-line menu output aligned.
const (
	nameWidth  = 20
	valueWidth = 16
)

// Binding maps a single-byte key to an existing setting and an optional
// action to run after a value is applied. The bound setting is borrowed,
// never owned: it must outlive every binding and menu that refers to it.
type Binding struct {
	key    byte
	item   *setting.Setting
	action func()
}

// NewBinding creates a binding for key. action may be nil. Key uniqueness
// within a menu is a caller precondition; it is not enforced here.
func NewBinding(key byte, item *setting.Setting, action func()) Binding {
	return Binding{key: key, item: item, action: action}
}

// Key returns the key identifying the binding.
func (b Binding) Key() byte { return b.key }

// Setting returns the bound setting.
func (b Binding) Setting() *setting.Setting { return b.item }

// ApplyText parses text into the bound setting and then runs the action,
// if any. The value is committed before the action runs, so the action
// can observe it.
func (b Binding) ApplyText(text string) {
	b.item.SetText(text)
	b.invoke()
}

// Apply sets the bound setting to v and then runs the binding's action,
// if any.
func Apply[T setting.Value](b Binding, v T) {
	setting.Set(b.item, v)
	b.invoke()
}

func (b Binding) invoke() {
	if b.action == nil {
		return
	}
	b.action()
}

// Line renders the binding as one display line: the setting name padded
// to 20 columns, the value right-justified in 16, and a newline.
func (b Binding) Line() string {
	return fmt.Sprintf("%-*s %*s\n", nameWidth, b.item.Name(), valueWidth, b.item.String())
}

// Equal reports whether two bindings share a key. The bound setting and
// action are deliberately ignored: within a menu, the key is the
// binding's identity.
func (b Binding) Equal(o Binding) bool { return b.key == o.key }
