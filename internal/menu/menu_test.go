package menu

import (
	"strings"
	"testing"

	"github.com/joeri-hu/tracktune/internal/setting"
)

func TestSelectAddedKey(t *testing.T) {
	m := New()
	m.Add('w', setting.New("screen width", 800), nil)

	if !m.Select('w') {
		t.Fatal("Select('w') = false, want true")
	}
	if got := m.Selection().Key(); got != 'w' {
		t.Errorf("Selection().Key() = %q, want 'w'", got)
	}
}

func TestSelectMissingKey(t *testing.T) {
	m := New()
	m.Add('w', setting.New("screen width", 800), nil)

	// A prior selection must not survive a failed Select.
	if !m.Select('w') {
		t.Fatal("Select('w') = false, want true")
	}
	if m.Select('x') {
		t.Fatal("Select('x') = true, want false")
	}
	if m.Selected() {
		t.Error("Selected() = true after failed Select, want false")
	}
}

func TestSelectionWithoutSelectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Selection() on unselected menu should panic")
		}
	}()
	New().Selection()
}

func TestRemoveWithoutSelectionPanics(t *testing.T) {
	m := New()
	m.Add('w', setting.New("screen width", 800), nil)
	defer func() {
		if recover() == nil {
			t.Error("Remove() on unselected menu should panic")
		}
	}()
	m.Remove()
}

func TestAddSelectRemove(t *testing.T) {
	m := New()
	m.Add('w', setting.New("screen width", 800), nil)
	m.Add('h', setting.New("screen height", 600), nil)
	before := m.Len()

	m.Add('x', setting.New("extra", 1), nil)
	if !m.Select('x') {
		t.Fatal("Select('x') = false, want true")
	}
	m.Remove()

	if m.Len() != before {
		t.Errorf("Len() = %d after add+remove, want %d", m.Len(), before)
	}
	if m.Selected() {
		t.Error("Selected() = true after Remove, want false")
	}
	if m.Select('x') {
		t.Error("Select('x') = true after Remove, want false")
	}
}

func TestAddGrowthInvalidatesCursor(t *testing.T) {
	m := New()
	m.Add('a', setting.New("first", 1), nil)
	if !m.Select('a') {
		t.Fatal("Select('a') = false, want true")
	}

	// Keep appending until the backing array grows at least once; the
	// cursor must be reset at that point and stay reset until re-Select.
	invalidated := false
	for i := byte('b'); i <= 'z'; i++ {
		m.Add(i, setting.New("more", 0), nil)
		if !m.Selected() {
			invalidated = true
			break
		}
	}
	if !invalidated {
		t.Error("cursor survived every Add; growth should have reset it")
	}

	if !m.Select('a') {
		t.Error("Select('a') = false after growth, want true")
	}
}

func TestBindingEquality(t *testing.T) {
	width := setting.New("screen width", 800)
	height := setting.New("screen height", 600)

	if !NewBinding('w', width, nil).Equal(NewBinding('w', height, nil)) {
		t.Error("bindings with the same key should be equal regardless of setting")
	}
	if NewBinding('w', width, nil).Equal(NewBinding('h', width, nil)) {
		t.Error("bindings with different keys should be unequal even on one setting")
	}
}

func TestApplyCommitsBeforeAction(t *testing.T) {
	s := setting.New("screen width", 800)
	observed := 0
	b := NewBinding('w', s, func() { observed = setting.MustGet[int](s) })

	Apply(b, 1024)
	if observed != 1024 {
		t.Errorf("action observed %d, want 1024 (value must be committed first)", observed)
	}
}

func TestApplyTextNilAction(t *testing.T) {
	s := setting.New("screen width", 800)
	b := NewBinding('w', s, nil)

	b.ApplyText("1024")
	if got := setting.MustGet[int](s); got != 1024 {
		t.Errorf("value = %d, want 1024", got)
	}
}

func TestLineFormat(t *testing.T) {
	b := NewBinding('w', setting.New("screen width", 800), nil)
	want := "screen width" + strings.Repeat(" ", 8+1+13) + "800\n"
	if got := b.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestRenderMenu(t *testing.T) {
	m := New()
	m.Add('w', setting.New("screen width", 800), nil)
	m.Add('h', setting.New("screen height", 600), nil)

	if !m.Select('w') {
		t.Fatal("Select('w') = false, want true")
	}
	Apply(*m.Selection(), 1024)

	out := m.Render()
	lines := strings.SplitAfter(out, "\n")
	if len(lines) < 2 {
		t.Fatalf("Render() = %q, want two lines", out)
	}
	if !strings.HasPrefix(lines[0], "W | screen width") || !strings.HasSuffix(lines[0], "1024\n") {
		t.Errorf("first line = %q, want W/1024", lines[0])
	}
	if !strings.HasPrefix(lines[1], "H | screen height") || !strings.HasSuffix(lines[1], "600\n") {
		t.Errorf("second line = %q, want H/600", lines[1])
	}
}

func TestBindingsInsertionOrder(t *testing.T) {
	m := New()
	m.Add('w', setting.New("screen width", 800), nil)
	m.Add('h', setting.New("screen height", 600), nil)
	m.Select('w')

	got := m.Bindings()
	if len(got) != 2 || got[0].Key() != 'w' || got[1].Key() != 'h' {
		t.Fatalf("Bindings() keys = %v, want [w h]", got)
	}

	// The copy is detached: truncating it must not touch the menu.
	got[0] = got[1]
	if m.Selection().Key() != 'w' {
		t.Error("mutating the Bindings copy affected the menu")
	}
}

func TestMenuEqualIgnoresCursor(t *testing.T) {
	width := setting.New("screen width", 800)
	height := setting.New("screen height", 600)

	a, b := New(), New()
	a.Add('w', width, nil)
	a.Add('h', height, nil)
	b.Add('w', height, nil) // bindings compare by key only
	b.Add('h', width, nil)

	a.Select('w')
	// b stays unselected.
	if !a.Equal(b) {
		t.Error("menus with equal binding sequences should be equal, cursor aside")
	}

	b.Add('x', width, nil)
	if a.Equal(b) {
		t.Error("menus with different binding sequences should be unequal")
	}
}
