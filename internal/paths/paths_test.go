package paths

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	valid := []string{"default", "rig-2", "lab_bench", "a"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "Rig", "has space", "über", strings.Repeat("x", 65), "../escape"}
	for _, name := range invalid {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) = nil, want error", name)
		}
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve(""); got != DefaultRig {
		t.Errorf("Resolve(\"\") = %q, want %q", got, DefaultRig)
	}
	if got := Resolve("bench"); got != "bench" {
		t.Errorf("Resolve(\"bench\") = %q, want %q", got, "bench")
	}
}

func TestPathsUnderRigDir(t *testing.T) {
	dir := Dir("bench")
	for _, p := range []string{SettingsPath("bench"), DBPath("bench"), LogPath("bench")} {
		if !strings.HasPrefix(p, dir) {
			t.Errorf("%q not under rig dir %q", p, dir)
		}
	}
}
