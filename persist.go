// Persistence for the bookmark store.
//
// The store is one JSON object holding the sets in order. The pending name
// is never written. Saving goes through a temporary file and a rename so
// a failed write leaves the previous file intact.
package bookmarks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// FileName is the store's file name inside the configuration directory.
const FileName = "bookmarks.json"

// document is the persisted form of a Store.
type document struct {
	Sets      []Set `json:"sets"`
	Algorithm int   `json:"alg,omitempty"` // Omitted for AlgXXHash64
}

// StorePath resolves the store file: config.Path if set, otherwise
// <home>/.config/<App>/bookmarks.json.
func StorePath(config Config) (string, error) {
	if config.Path != "" {
		return config.Path, nil
	}
	app := config.App
	if app == "" {
		app = DefaultApp
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoHome, err)
	}
	if home == "" {
		return "", ErrNoHome
	}
	return filepath.Join(home, ".config", app, FileName), nil
}

// Load reads the store file. The pending name starts empty.
func Load(config Config) (*Store, error) {
	path, err := StorePath(config)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %w", ErrIO, path, err)
	}
	s, err := decodeStore(data, config)
	if err != nil {
		return nil, err
	}
	s.config.Logger.Debug("bookmarks: loaded", "path", path, "sets", len(s.sets))
	return s, nil
}

// Open loads the store file, returning an empty store if it does not exist.
func Open(config Config) (*Store, error) {
	s, err := Load(config)
	if errors.Is(err, fs.ErrNotExist) {
		return New(config), nil
	}
	return s, err
}

// Save writes the store file, replacing any previous content.
func (s *Store) Save() error {
	path, err := StorePath(s.config)
	if err != nil {
		return err
	}
	data, err := s.encode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("%w: create directory: %w", ErrIO, err)
	}
	if s.config.Backup {
		if err := backup(path); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: write %s: %w", ErrIO, tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: rename %s: %w", ErrIO, path, err)
	}
	s.config.Logger.Debug("bookmarks: saved", "path", path, "sets", len(s.sets))
	return nil
}

// encode serialises the persisted part of the store.
func (s *Store) encode() ([]byte, error) {
	doc := document{Sets: s.sets}
	if doc.Sets == nil {
		doc.Sets = []Set{}
	}
	if s.config.HashAlgorithm != AlgXXHash64 {
		doc.Algorithm = s.config.HashAlgorithm
	}
	return json.Marshal(doc)
}

// decodeStore parses a persisted store and checks the set invariants: no
// empty sets and at most one set per path. The algorithm recorded in the
// file wins over config.HashAlgorithm; a file without one was written with
// AlgXXHash64.
func decodeStore(data []byte, config Config) (*Store, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}

	if doc.Algorithm == 0 {
		doc.Algorithm = AlgXXHash64
	}
	if !validAlgorithm(doc.Algorithm) {
		return nil, fmt.Errorf("%w: algorithm %d", ErrCorruptStore, doc.Algorithm)
	}

	seen := make(map[string]bool, len(doc.Sets))
	for _, set := range doc.Sets {
		if len(set.Marks) == 0 {
			return nil, fmt.Errorf("%w: empty set for %q", ErrCorruptStore, set.Path)
		}
		if seen[set.Path] {
			return nil, fmt.Errorf("%w: duplicate set for %q", ErrCorruptStore, set.Path)
		}
		seen[set.Path] = true
	}

	config.HashAlgorithm = doc.Algorithm
	s := New(config)
	s.sets = doc.Sets
	return s, nil
}
