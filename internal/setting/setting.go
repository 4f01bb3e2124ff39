// Package setting implements the typed setting container the rest of the
// rig configuration is built from: a named value drawn from a closed set
// of scalar kinds, with a canonical text form for persistence and display.
package setting

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which alternative a Setting currently holds.
type Kind uint8

const (
	Bool Kind = iota
	Uint8
	Int
	Float64
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Uint8:
		return "uint8"
	case Int:
		return "int"
	case Float64:
		return "float64"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is the closed set of kinds a Setting can hold. This constraint is
// the single declaration site of the set; nothing outside it can ever be
// stored.
type Value interface {
	bool | uint8 | int | float64
}

// ErrTypeMismatch reports a typed read of a kind other than the active one.
var ErrTypeMismatch = errors.New("type mismatch")

// Setting maps a scalar value to a named setting. Exactly one kind is
// active at a time.
//
// A Setting is not safe for concurrent mutation; callers that share one
// across goroutines must synchronize externally.
type Setting struct {
	name string
	val  tagged
}

// tagged is the sum over the declared kinds. Only the field matching kind
// is meaningful; the others stay zero.
type tagged struct {
	kind Kind
	b    bool
	u8   uint8
	i    int
	f    float64
}

func box[T Value](v T) tagged {
	switch v := any(v).(type) {
	case bool:
		return tagged{kind: Bool, b: v}
	case uint8:
		return tagged{kind: Uint8, u8: v}
	case int:
		return tagged{kind: Int, i: v}
	case float64:
		return tagged{kind: Float64, f: v}
	}
	panic("setting: kind outside the declared set")
}

// New creates a setting with the given display name and initial value.
// The name is fixed for the setting's lifetime.
func New[T Value](name string, initial T) *Setting {
	return &Setting{name: name, val: box(initial)}
}

// Name returns the display name verbatim.
func (s *Setting) Name() string { return s.name }

// Tagname returns the machine-readable key: the name with every space
// replaced by a hyphen. It is recomputed on every call so it can never
// drift from the name.
func (s *Setting) Tagname() string {
	return strings.ReplaceAll(s.name, " ", "-")
}

// Kind returns the currently active kind.
func (s *Setting) Kind() Kind { return s.val.kind }

// String formats the active value in its canonical text form: booleans as
// "true"/"false", floats in the shortest representation that round-trips.
func (s *Setting) String() string {
	switch s.val.kind {
	case Bool:
		return strconv.FormatBool(s.val.b)
	case Uint8:
		return strconv.FormatUint(uint64(s.val.u8), 10)
	case Int:
		return strconv.Itoa(s.val.i)
	case Float64:
		return strconv.FormatFloat(s.val.f, 'g', -1, 64)
	}
	panic("setting: kind outside the declared set")
}

// Get returns the active value as T. It fails with ErrTypeMismatch when T
// is not the active kind; it never coerces.
func Get[T Value](s *Setting) (T, error) {
	var zero T
	if want := box(zero).kind; want != s.val.kind {
		return zero, fmt.Errorf("setting %q holds %s, not %s: %w",
			s.name, s.val.kind, want, ErrTypeMismatch)
	}
	switch s.val.kind {
	case Bool:
		return any(s.val.b).(T), nil
	case Uint8:
		return any(s.val.u8).(T), nil
	case Int:
		return any(s.val.i).(T), nil
	case Float64:
		return any(s.val.f).(T), nil
	}
	panic("setting: kind outside the declared set")
}

// MustGet is Get for values whose kind is known by construction. It
// panics on a kind mismatch.
func MustGet[T Value](s *Setting) T {
	v, err := Get[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

// Set replaces the active value, switching the active kind to T's.
func Set[T Value](s *Setting, v T) {
	s.val = box(v)
}

// SetText parses text into the currently active kind; the kind itself
// never changes. Booleans recognize exactly "1" and "true" as true and
// treat everything else as false. Numeric kinds consume the longest valid
// leading prefix of text; when no valid prefix exists, or the prefix does
// not fit the kind, the stored value is left exactly as it was. The
// silent no-op on malformed input is a compatibility contract relied on
// by persistence callers, not an oversight; the package tests pin it.
func (s *Setting) SetText(text string) {
	switch s.val.kind {
	case Bool:
		s.val.b = text == "1" || text == "true"
	case Uint8:
		if n, ok := parseUint8Prefix(text); ok {
			s.val.u8 = n
		}
	case Int:
		if n, ok := parseIntPrefix(text); ok {
			s.val.i = n
		}
	case Float64:
		if f, ok := parseFloatPrefix(text); ok {
			s.val.f = f
		}
	}
}

// Accepts reports whether text carries a value for the currently active
// kind, i.e. whether SetText(text) would store something. Boolean text
// always does: every string has a defined bool reading, with "1" and
// "true" as true and all else false. Numeric text must have a valid
// leading prefix that fits the kind.
func (s *Setting) Accepts(text string) bool {
	switch s.val.kind {
	case Bool:
		return true
	case Uint8:
		_, ok := parseUint8Prefix(text)
		return ok
	case Int:
		_, ok := parseIntPrefix(text)
		return ok
	case Float64:
		_, ok := parseFloatPrefix(text)
		return ok
	}
	panic("setting: kind outside the declared set")
}

// Equal reports whether two settings have the same name and hold the same
// kind and value.
func (s *Setting) Equal(o *Setting) bool {
	return s.name == o.name && s.val == o.val
}
