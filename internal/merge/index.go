package merge

import (
	"iter"
	"slices"
	"strings"

	"tunecat/internal/canon"
)

// IndexEntry pairs an artist key with the display name chosen for it.
type IndexEntry struct {
	Key  canon.Key
	Name string
}

// KeyIndex maps artist names to canonical keys. It is built once per run and
// never modified, so it can be passed to every operation that needs ids.
type KeyIndex struct {
	entries []IndexEntry
	byKey   map[canon.Key]int
}

// NewKeyIndex builds an index from raw names. Names are trimmed, blanks are
// skipped, and the remainder is sorted; the first name in sorted order becomes
// the display name for its key.
func NewKeyIndex(names []string) *KeyIndex {
	sorted := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			sorted = append(sorted, trimmed)
		}
	}
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	idx := &KeyIndex{byKey: make(map[canon.Key]int, len(sorted))}
	for _, name := range sorted {
		key := canon.ArtistKey(name)
		if _, exists := idx.byKey[key]; exists {
			continue
		}
		idx.byKey[key] = len(idx.entries)
		idx.entries = append(idx.entries, IndexEntry{Key: key, Name: name})
	}
	return idx
}

// Len returns the number of distinct keys.
func (idx *KeyIndex) Len() int { return len(idx.entries) }

// Lookup returns the key for name if the index knows it.
func (idx *KeyIndex) Lookup(name string) (canon.Key, bool) {
	key := canon.ArtistKey(name)
	if _, ok := idx.byKey[key]; !ok {
		return "", false
	}
	return key, true
}

// Name returns the display name registered for key.
func (idx *KeyIndex) Name(key canon.Key) (string, bool) {
	i, ok := idx.byKey[key]
	if !ok {
		return "", false
	}
	return idx.entries[i].Name, true
}

// Entries iterates the index in display-name order.
func (idx *KeyIndex) Entries() iter.Seq[IndexEntry] {
	return func(yield func(IndexEntry) bool) {
		for _, e := range idx.entries {
			if !yield(e) {
				return
			}
		}
	}
}
