// Package paths lays out the per-rig directory tree under ~/.tracktune.
package paths

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.tracktune.
func BaseDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tracktune")
}

// Dir returns the rig-specific directory.
func Dir(rig string) string {
	return filepath.Join(BaseDir(), "rigs", rig)
}

// SettingsPath returns the TOML settings file path for a rig.
func SettingsPath(rig string) string {
	return filepath.Join(Dir(rig), "settings.toml")
}

// DBPath returns the SQLite settings database path for a rig.
func DBPath(rig string) string {
	return filepath.Join(Dir(rig), "tracktune.db")
}

// LogPath returns the log file path for a rig.
func LogPath(rig string) string {
	return filepath.Join(Dir(rig), "logs", "tracktune.log")
}

// EnsureDir creates the rig directory tree with proper permissions.
func EnsureDir(rig string) error {
	dirs := []string{
		Dir(rig),
		filepath.Dir(LogPath(rig)),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
