// Core store type and its CRUD operations.
//
// Store owns every Set exclusively. Sets are kept in first-seen order and
// looked up by linear scan; a viewer has tens of open documents, not
// thousands. A Store is not safe for concurrent use.
package bookmarks

import (
	"log/slog"
	"slices"
)

// DefaultApp names the directory under ~/.config that holds the store.
const DefaultApp = "miro-pdf"

// Config holds store configuration options.
type Config struct {
	App           string       // Directory under ~/.config (default DefaultApp)
	Path          string       // Store file, overrides App when set
	HashAlgorithm int          // 1=xxHash3, 2=FNV1a, 3=Blake2b, 4=xxHash64 (default)
	Backup        bool         // Keep a compressed copy of the previous file on Save
	Logger        *slog.Logger // Default slog.Default()
}

// Store is the in-memory bookmark collection plus the transient name the
// user is typing for a new bookmark.
type Store struct {
	sets    []Set
	pending string // Never persisted
	config  Config
}

// New returns an empty store.
func New(config Config) *Store {
	if config.App == "" {
		config.App = DefaultApp
	}
	if config.HashAlgorithm == 0 {
		config.HashAlgorithm = AlgXXHash64
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Store{config: config}
}

// Create adds a bookmark to the set for path, creating the set if path has
// not been seen. path must already be canonical. A new set is tagged with
// the file's fingerprint, or zero if the file cannot be read.
func (s *Store) Create(path, name string, page int32) {
	mark := Bookmark{Page: page, Name: name}

	if i := s.index(path); i >= 0 {
		s.sets[i].Marks = append(s.sets[i].Marks, mark)
		return
	}

	sum, err := FingerprintFile(path, s.config.HashAlgorithm)
	if err != nil {
		s.config.Logger.Debug("bookmarks: fingerprint failed, using zero", "path", path, "err", err)
		sum = 0
	}
	s.sets = append(s.sets, Set{
		Marks:    []Bookmark{mark},
		FileHash: sum,
		Path:     path,
	})
}

// Delete removes every bookmark named name from the set for path. A set
// left with no bookmarks is removed. Unknown paths and names are ignored.
func (s *Store) Delete(path, name string) {
	i := s.index(path)
	if i < 0 {
		return
	}
	s.sets[i].Marks = slices.DeleteFunc(s.sets[i].Marks, func(m Bookmark) bool {
		return m.Name == name
	})
	if len(s.sets[i].Marks) == 0 {
		s.sets = slices.Delete(s.sets, i, i+1)
	}
}

// SetPending replaces the in-progress bookmark name.
func (s *Store) SetPending(text string) {
	s.pending = text
}

// Pending returns the in-progress bookmark name.
func (s *Store) Pending() string {
	return s.pending
}

// Get returns a copy of the set for path.
func (s *Store) Get(path string) (Set, bool) {
	if i := s.index(path); i >= 0 {
		return s.sets[i].clone(), true
	}
	return Set{}, false
}

// Sets returns a copy of every set in first-seen order.
func (s *Store) Sets() []Set {
	out := make([]Set, 0, len(s.sets))
	for _, set := range s.sets {
		out = append(out, set.clone())
	}
	return out
}

// Len returns the number of sets.
func (s *Store) Len() int {
	return len(s.sets)
}

func (s *Store) index(path string) int {
	return slices.IndexFunc(s.sets, func(set Set) bool {
		return set.Path == path
	})
}
