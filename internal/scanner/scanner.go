// Package scanner locates catalog exercise mentions inside free text.
package scanner

import (
	"sort"
	"strings"

	"github.com/lrendell/fitimport/internal/catalog"
)

// Mention is one located, non-overlapping occurrence of a catalog exercise.
// Start and End are byte offsets into the scanned text, End exclusive.
type Mention struct {
	Name     string
	Start    int
	End      int
	Exercise *catalog.Exercise
}

// FindAllMentions scans text for every catalog exercise name, longest names
// first so "Incline Bench Press" claims its span before "Bench Press" can.
// Occurrences must sit on word boundaries and may not overlap an already
// accepted span. Results are ordered by Start.
func FindAllMentions(idx *catalog.Index, text string) []Mention {
	if text == "" || idx.Len() == 0 {
		return nil
	}

	lower := strings.ToLower(text)
	var found []Mention

	for _, ex := range idx.ByLength() {
		needle := strings.ToLower(ex.Name)
		if needle == "" {
			continue
		}

		from := 0
		for {
			i := strings.Index(lower[from:], needle)
			if i < 0 {
				break
			}
			start := from + i
			end := start + len(needle)
			from = start + 1

			if !onWordBoundary(lower, start, end) {
				continue
			}
			if overlaps(found, start, end) {
				continue
			}

			found = append(found, Mention{
				Name:     text[start:end],
				Start:    start,
				End:      end,
				Exercise: ex,
			})
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Start < found[j].Start })
	return found
}

// onWordBoundary reports whether s[start:end] is delimited by non-alphanumeric
// characters (or the ends of the string) on both sides.
func onWordBoundary(s string, start, end int) bool {
	if start > 0 && isWordByte(s[start-1]) {
		return false
	}
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b >= 'A' && b <= 'Z'
}

func overlaps(accepted []Mention, start, end int) bool {
	for _, m := range accepted {
		if start < m.End && end > m.Start {
			return true
		}
	}
	return false
}
