package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joeri-hu/tracktune/internal/config"
	"github.com/joeri-hu/tracktune/internal/setting"
)

// mapStore is the minimal in-memory Store used to test Save/Load alone.
type mapStore map[string]string

func (m mapStore) Get(key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

func (m mapStore) Set(key, value string) { m[key] = value }

func TestSaveWritesTagnames(t *testing.T) {
	st := mapStore{}
	cfg := config.Defaults()
	Save(st, Items(cfg.Items()))

	tests := map[string]string{
		"screen-width":     "800",
		"serial-enabled":   "true",
		"proportional":     "0.3",
		"min.-ball-radius": "5",
		"red-balance":      "128",
	}
	for key, want := range tests {
		if got := st[key]; got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
	if len(st) != len(cfg.Items()) {
		t.Errorf("stored %d keys, want %d", len(st), len(cfg.Items()))
	}
}

func TestLoadAppliesStoredValues(t *testing.T) {
	st := mapStore{
		"screen-width":   "1024",
		"serial-enabled": "0",
		"proportional":   "0.5",
	}
	cfg := config.Defaults()
	Load(st, Items(cfg.Items()))

	if got := setting.MustGet[int](cfg.Screen.Width); got != 1024 {
		t.Errorf("screen width = %d, want 1024", got)
	}
	if got := setting.MustGet[bool](cfg.Serial.Enabled); got {
		t.Error("serial enabled = true, want false")
	}
	if got := setting.MustGet[float64](cfg.PID.Kp); got != 0.5 {
		t.Errorf("proportional = %v, want 0.5", got)
	}
	// Absent keys fall back to the current text and stay at defaults.
	if got := setting.MustGet[int](cfg.Screen.Height); got != 600 {
		t.Errorf("screen height = %d, want default 600", got)
	}
}

// A stored value that fails to parse leaves the default in place; the
// permissive no-op in Setting.SetText is part of the load contract.
func TestLoadMalformedValueKeepsDefault(t *testing.T) {
	st := mapStore{"screen-width": "abc"}
	cfg := config.Defaults()
	Load(st, Items(cfg.Items()))

	if got := setting.MustGet[int](cfg.Screen.Width); got != 800 {
		t.Errorf("screen width = %d, want default 800", got)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	cfg := config.Defaults()
	setting.Set(cfg.Screen.Width, 1024)
	setting.Set(cfg.Camera.Balance.Red, uint8(200))

	st, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	Save(st, Items(cfg.Items()))
	if err := st.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() reopen error = %v", err)
	}
	loaded := config.Defaults()
	Load(reopened, Items(loaded.Items()))

	if !loaded.Equal(cfg) {
		t.Error("loaded tree differs from saved tree")
	}
}

func TestOpenFileMissing(t *testing.T) {
	st, err := OpenFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("OpenFile() on missing file error = %v, want empty store", err)
	}
	if st.Len() != 0 {
		t.Errorf("Len() = %d, want 0", st.Len())
	}
	if got := st.Get("screen-width", "800"); got != "800" {
		t.Errorf("Get fallback = %q, want %q", got, "800")
	}
}

func TestFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	st, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	st.Set("screen-width", "800")
	if err := st.Flush(); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}
