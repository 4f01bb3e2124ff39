package menu

import (
	"slices"
	"strings"

	"github.com/joeri-hu/tracktune/internal/setting"
)

// unselected is the cursor sentinel for "nothing selected".
const unselected = -1

// Menu is an ordered, key-searchable collection of bindings with a single
// selection cursor. Insertion order is display order.
//
// The cursor is valid only between a successful Select and the next
// structural mutation: Add resets it whenever the backing array has to
// grow, and Remove always resets it. Callers must re-Select after any Add
// whose effect on capacity is unknown. A Menu is not safe for concurrent
// use.
type Menu struct {
	bindings []Binding
	cursor   int
}

// New creates an empty menu.
func New() *Menu {
	return &Menu{cursor: unselected}
}

// Add appends a binding for key. No uniqueness check is performed on key;
// Select finds the first match in insertion order.
func (m *Menu) Add(key byte, item *setting.Setting, action func()) {
	if len(m.bindings) == cap(m.bindings) {
		m.cursor = unselected
	}
	m.bindings = append(m.bindings, NewBinding(key, item, action))
}

// Remove erases the binding at the cursor and resets the cursor. Calling
// it without a valid selection is a contract violation and panics.
func (m *Menu) Remove() {
	if !m.Selected() {
		panic("menu: Remove without a valid selection")
	}
	m.bindings = append(m.bindings[:m.cursor], m.bindings[m.cursor+1:]...)
	m.cursor = unselected
}

// Select moves the cursor to the first binding whose key matches,
// scanning in insertion order. On a miss it returns false and leaves the
// menu unselected, regardless of any previous selection; check the result
// before calling Selection.
func (m *Menu) Select(key byte) bool {
	for i := range m.bindings {
		if m.bindings[i].key == key {
			m.cursor = i
			return true
		}
	}
	m.cursor = unselected
	return false
}

// Selected reports whether the cursor references a binding.
func (m *Menu) Selected() bool {
	return m.cursor >= 0 && m.cursor < len(m.bindings)
}

// Selection returns the binding at the cursor. Calling it without a valid
// selection is a contract violation and panics; a prior Select must have
// succeeded with no structural mutation in between.
func (m *Menu) Selection() *Binding {
	if !m.Selected() {
		panic("menu: Selection without a valid selection")
	}
	return &m.bindings[m.cursor]
}

// Len returns the number of bindings.
func (m *Menu) Len() int { return len(m.bindings) }

// Bindings returns a copy of the binding sequence in insertion order.
// Mutating the copy does not affect the menu or its cursor.
func (m *Menu) Bindings() []Binding {
	return slices.Clone(m.bindings)
}

// lineWidth is the rendered width of one menu line, for pre-sizing.
const lineWidth = len("X | ") + nameWidth + 1 + valueWidth + 1

// Render returns the whole menu as text: for each binding in insertion
// order, its upper-cased key, a " | " separator, and its Line.
func (m *Menu) Render() string {
	var sb strings.Builder
	sb.Grow(lineWidth * len(m.bindings))
	for _, b := range m.bindings {
		sb.WriteByte(upper(b.key))
		sb.WriteString(" | ")
		sb.WriteString(b.Line())
	}
	return sb.String()
}

func upper(key byte) byte {
	if 'a' <= key && key <= 'z' {
		return key - ('a' - 'A')
	}
	return key
}

// Equal compares two menus over their ordered binding sequences alone;
// bindings compare by key. The cursor is excluded on purpose: cursor
// positions in two separately built menus are not comparable.
func (m *Menu) Equal(o *Menu) bool {
	if len(m.bindings) != len(o.bindings) {
		return false
	}
	for i := range m.bindings {
		if !m.bindings[i].Equal(o.bindings[i]) {
			return false
		}
	}
	return true
}
