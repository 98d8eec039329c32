// Package file provides a JSON-file-backed key-value store. Each key is
// one file under the data directory, written atomically via a temp file
// and rename. Suited to the handful of small documents this application
// persists; use the sqlite store for anything bigger.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/neurobreath/nbassist/internal/core/ports/driven"
)

// Ensure KVStore implements the interface.
var _ driven.KVStore = (*KVStore)(nil)

// KVStore stores each key as a JSON file under a directory.
type KVStore struct {
	mu  sync.Mutex
	dir string
}

// NewKVStore creates a file-backed store under dir, creating the
// directory if needed. If dir is empty, defaults to
// ~/.nbassist/data/kv.
func NewKVStore(dir string) (*KVStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".nbassist", "data", "kv")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &KVStore{dir: dir}, nil
}

// Path returns the data directory.
func (s *KVStore) Path() string {
	return s.dir
}

// Get returns the value for the key.
func (s *KVStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.filename(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %q: %w", key, err)
	}

	var value []byte
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, false, fmt.Errorf("decoding %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes the value under the key atomically.
func (s *KVStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}

	target := s.filename(key)
	tmp, err := os.CreateTemp(s.dir, ".kv-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %q: %w", key, err)
	}
	return nil
}

// Delete removes the key.
func (s *KVStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.filename(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting %q: %w", key, err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *KVStore) Close() error {
	return nil
}

// filename maps a key to a file path, escaping separators so keys can
// never traverse out of the data directory.
func (s *KVStore) filename(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}
