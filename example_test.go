package bookmarks_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jpl-au/bookmarks"
)

func Example() {
	dir, _ := os.MkdirTemp("", "bookmarks-example")
	defer os.RemoveAll(dir)

	config := bookmarks.Config{Path: filepath.Join(dir, "bookmarks.json")}

	// Open the store, or start empty if nothing was saved yet
	store, err := bookmarks.Open(config)
	if err != nil {
		log.Fatal(err)
	}

	store.Create("/doc.pdf", "intro", 1)
	store.Create("/doc.pdf", "ch2", 10)

	// Persisting is up to the caller
	if err := store.Save(); err != nil {
		log.Fatal(err)
	}

	loaded, _ := bookmarks.Load(config)
	for _, set := range loaded.Sets() {
		for _, m := range set.Marks {
			fmt.Println(set.Path, m.Page, m.Name)
		}
	}
	// Output:
	// /doc.pdf 1 intro
	// /doc.pdf 10 ch2
}

func ExampleStore_Update() {
	store := bookmarks.New(bookmarks.Config{})

	// The host turns the pending name and its current page into a
	// CreateBookmark before handing it to the store.
	store.Update(bookmarks.PendingName{Text: "summary"})
	cmd := bookmarks.RequestNewBookmark{Name: store.Pending()}
	if !bookmarks.Owned(cmd) {
		store.Update(bookmarks.CreateBookmark{Path: "/doc.pdf", Name: cmd.Name, Page: 7})
	}

	set, _ := store.Get("/doc.pdf")
	fmt.Println(set.Marks)
	// Output: [{7 summary}]
}

func ExampleStore_Delete() {
	store := bookmarks.New(bookmarks.Config{})
	store.Create("/doc.pdf", "intro", 1)

	// Removing the last bookmark removes the document's set
	store.Delete("/doc.pdf", "intro")
	fmt.Println(store.Len())
	// Output: 0
}

func ExampleFingerprint() {
	a := bookmarks.Fingerprint([]byte("same bytes"))
	b := bookmarks.Fingerprint([]byte("same bytes"))
	fmt.Println(a == b)
	// Output: true
}
