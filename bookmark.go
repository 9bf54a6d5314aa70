// Bookmark data model.
//
// A Set groups every bookmark for one document path. The JSON tags define
// the persisted layout; field order matches the on-disk order.
package bookmarks

import "slices"

// Bookmark is a named marker at a page. Names are not unique within a set
// and several bookmarks may point at the same page.
type Bookmark struct {
	Page int32  `json:"page"`
	Name string `json:"name"`
}

// Set holds the bookmarks for one document in creation order.
type Set struct {
	Marks    []Bookmark `json:"marks"`
	FileHash uint64     `json:"file_hash"` // Fingerprint at creation, never recomputed
	Path     string     `json:"path"`      // Canonical path, the set's key
}

// Find returns every bookmark in s named name, in creation order.
func (s Set) Find(name string) []Bookmark {
	var out []Bookmark
	for _, m := range s.Marks {
		if m.Name == name {
			out = append(out, m)
		}
	}
	return out
}

// clone copies s so the caller cannot reach the store's backing arrays.
func (s Set) clone() Set {
	s.Marks = slices.Clone(s.Marks)
	return s
}
