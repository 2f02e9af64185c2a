// Package deck collects a folder of card images into an ordered print deck.
package deck

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/deckforge/cardpress/internal/card"
	"github.com/deckforge/cardpress/internal/quantity"
)

// Deck is the full ordered sequence of card entries for one invocation,
// including one entry per duplicate copy. It is immutable once collected.
type Deck []card.Entry

// Collect walks root and builds the deck. Within each directory the files are
// sorted case-insensitively so ordering never depends on filesystem
// enumeration order; a quantity sidecar file, if present, overrides the
// per-file quantities for that directory only. When includeSubfolders is
// false, subdirectories are still traversed but their files are skipped.
//
// An empty deck is not an error; the caller decides how to report it.
func Collect(root string, includeSubfolders bool) (Deck, error) {
	var deck Deck

	err := filepath.WalkDir(root, func(dir string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if !includeSubfolders && dir != root {
			return nil
		}

		names, err := listFileNames(dir)
		if err != nil {
			return err
		}

		qtys := make(quantity.Map)
		for _, name := range names {
			if quantity.IsSidecar(name) {
				qtys = quantity.ParseSidecar(filepath.Join(dir, name))
				break
			}
		}

		for _, name := range names {
			if !isSupportedImage(name) {
				continue
			}
			qty := qtys.Resolve(name)
			for i := 0; i < qty; i++ {
				deck = append(deck, card.Entry{Source: filepath.Join(dir, name)})
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning folder %s: %v", root, err)
	}

	return deck, nil
}

// listFileNames returns the plain file names in dir, sorted
// case-insensitively.
func listFileNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names, nil
}

// isSupportedImage reports whether filename has a supported image extension.
func isSupportedImage(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}
