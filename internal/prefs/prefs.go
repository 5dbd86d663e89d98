// Package prefs persists small single-key preferences (theme choice, session
// token) as files under the user's config directory. It is the local
// preference store read at startup and written on change.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes named preference values under a directory,
// one file per key.
type Store struct {
	dir string
}

// Open creates a Store rooted at the user config directory
// (e.g. ~/.config/kalemci), creating it if needed.
func Open() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("prefs open: %w", err)
	}
	return OpenAt(filepath.Join(base, "kalemci"))
}

// OpenAt creates a Store rooted at the given directory. Used directly
// in tests.
func OpenAt(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("prefs open %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Get returns the stored value for key, or "" when the key has never been
// set or cannot be read.
func (s *Store) Get(key string) string {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Set writes the value for key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value+"\n"), 0o600); err != nil {
		return fmt.Errorf("prefs set %s: %w", key, err)
	}
	return nil
}

// Delete removes the stored value for key. Deleting an absent key is not
// an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("prefs delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}
