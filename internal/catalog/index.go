package catalog

import (
	"sort"
	"strings"
	"sync/atomic"
)

// Index is a queryable view over the exercise library: an exact-name lookup
// and a longest-name-first list for scanning. It is never mutated after
// Build returns, so any number of readers may share one Index.
type Index struct {
	byName  map[string]*Exercise // lowercased canonical name -> entry
	byLen   []*Exercise          // sorted by len(name) descending
	entries []Exercise
}

// Build constructs an Index from the library. The slice is copied so later
// changes by the caller cannot be observed through the Index.
func Build(entries []Exercise) *Index {
	idx := &Index{
		byName:  make(map[string]*Exercise, len(entries)),
		byLen:   make([]*Exercise, 0, len(entries)),
		entries: make([]Exercise, len(entries)),
	}
	copy(idx.entries, entries)

	for i := range idx.entries {
		e := &idx.entries[i]
		idx.byName[strings.ToLower(e.Name)] = e
		idx.byLen = append(idx.byLen, e)
	}

	// Longest names first so "Incline Bench Press" wins over "Bench Press".
	sort.SliceStable(idx.byLen, func(i, j int) bool {
		return len(idx.byLen[i].Name) > len(idx.byLen[j].Name)
	})

	return idx
}

// Lookup returns the entry whose canonical name equals name, case-insensitive.
func (idx *Index) Lookup(name string) (*Exercise, bool) {
	e, ok := idx.byName[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// ByLength returns all entries sorted longest canonical name first.
func (idx *Index) ByLength() []*Exercise {
	return idx.byLen
}

// All returns every entry in load order.
func (idx *Index) All() []Exercise {
	return idx.entries
}

// Len reports the number of entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Holder publishes an Index to concurrent readers. Rebuilds swap the whole
// Index in one store, so a reader never observes a half-built view.
type Holder struct {
	current atomic.Pointer[Index]
}

// NewHolder builds the initial Index from entries.
func NewHolder(entries []Exercise) *Holder {
	h := &Holder{}
	h.current.Store(Build(entries))
	return h
}

// Current returns the currently published Index.
func (h *Holder) Current() *Index {
	return h.current.Load()
}

// Rebuild constructs a fresh Index from entries and publishes it atomically.
// In-flight readers keep the Index they already hold.
func (h *Holder) Rebuild(entries []Exercise) *Index {
	idx := Build(entries)
	h.current.Store(idx)
	return idx
}
