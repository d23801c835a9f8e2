// Package storage provides the durable key/value layer backing the cart and
// the cached catalog. Values are stored one file per key under a data
// directory so they survive process restarts.
package storage

import (
	"os"
	"path/filepath"
	"strings"
)

// Store persists string values keyed by name. All operations degrade
// gracefully: a missing or unreadable key reads as absent and a failed write
// is silently dropped. Callers never see an error from this layer.
type Store struct {
	dir string
}

// Open returns a store rooted at dir, creating it when possible. The
// directory may also be created lazily on the first Set.
func Open(dir string) *Store {
	resolved := mustExpand(dir)
	_ = os.MkdirAll(resolved, 0o755)
	return &Store{dir: resolved}
}

// Get returns the value stored under key. The second result is false when
// the key is absent or unreadable.
func (s *Store) Get(key string) (string, bool) {
	if s == nil || key == "" {
		return "", false
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) {
	if s == nil || key == "" {
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return
	}
	_ = os.WriteFile(s.path(key), []byte(value), 0o644)
}

// Remove deletes the value stored under key. Removing an absent key is a
// no-op.
func (s *Store) Remove(key string) {
	if s == nil || key == "" {
		return
	}
	_ = os.Remove(s.path(key))
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

func mustExpand(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "."
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return trimmed
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return trimmed
	}
	return abs
}
