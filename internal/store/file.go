package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// File is a TOML-backed store. Values live in memory between OpenFile and
// Flush.
type File struct {
	path   string
	values map[string]string
}

// OpenFile reads the TOML file at path. A missing file yields an empty
// store rather than an error, so first runs fall back to defaults.
func OpenFile(path string) (*File, error) {
	values := map[string]string{}
	if _, err := toml.DecodeFile(path, &values); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &File{path: path, values: values}, nil
}

// Get returns the stored value for key, or fallback when absent.
func (f *File) Get(key, fallback string) string {
	if v, ok := f.values[key]; ok {
		return v
	}
	return fallback
}

// Set stores value under key.
func (f *File) Set(key, value string) {
	f.values[key] = value
}

// Len returns the number of stored keys.
func (f *File) Len() int { return len(f.values) }

// Flush writes the store back to disk, creating parent dirs as needed.
func (f *File) Flush() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return err
	}
	out, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(out).Encode(f.values)
	if closeErr := out.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
