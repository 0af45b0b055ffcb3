// Package match resolves free-form exercise names against the catalog.
package match

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/lrendell/fitimport/internal/catalog"
	"github.com/lrendell/fitimport/internal/normalize"
)

// Tier identifies the matching stage that produced a Result.
type Tier string

const (
	TierExact             Tier = "exact"
	TierNormalizedExact   Tier = "normalized"
	TierQualifierStripped Tier = "qualifier-stripped"
	TierFuzzy             Tier = "fuzzy"
)

// Scores assigned by the non-fuzzy stages.
const (
	scoreExact             = 1.0
	scoreNormalizedExact   = 0.95
	scoreQualifierStripped = 0.9
)

// DefaultThreshold is the minimum fuzzy score accepted for AI-authored input.
// Voice transcripts use a looser one; that choice belongs to the caller.
const DefaultThreshold = 0.5

// Result is the outcome of a single name resolution.
type Result struct {
	Exercise     *catalog.Exercise
	Score        float64
	Tier         Tier
	IsExactMatch bool
}

// Engine answers best-match queries against one immutable catalog Index.
// It holds no per-query state, so a single Engine may serve concurrent callers.
type Engine struct {
	index *catalog.Index

	// normalized and stripped forms of every catalog name, computed once
	normalized []string
	stripped   []string
}

// NewEngine precomputes normalized catalog forms for the given index.
func NewEngine(idx *catalog.Index) *Engine {
	entries := idx.All()
	e := &Engine{
		index:      idx,
		normalized: make([]string, len(entries)),
		stripped:   make([]string, len(entries)),
	}
	for i := range entries {
		e.normalized[i] = normalize.Normalize(entries[i].Name)
		e.stripped[i] = normalize.StripQualifiers(e.normalized[i])
	}
	return e
}

// Index returns the catalog index the engine was built over.
func (e *Engine) Index() *catalog.Index {
	return e.index
}

// FindBestMatch resolves name through the four stages in order; the first
// stage that hits wins. Returns nil when nothing reaches threshold.
func (e *Engine) FindBestMatch(name string, threshold float64) *Result {
	name = strings.TrimSpace(name)
	if name == "" || e.index.Len() == 0 {
		return nil
	}

	// Stage 1: case-insensitive exact.
	if ex, ok := e.index.Lookup(name); ok {
		return &Result{Exercise: ex, Score: scoreExact, Tier: TierExact, IsExactMatch: true}
	}

	entries := e.index.All()

	// Stage 2: equality after normalization.
	norm := normalize.Normalize(name)
	if norm != "" {
		for i := range entries {
			if e.normalized[i] == norm {
				return &Result{Exercise: &entries[i], Score: scoreNormalizedExact, Tier: TierNormalizedExact}
			}
		}
	}

	// Stage 3: equality after qualifier stripping. The input's stripped form
	// may meet either the catalog's stripped or unstripped normalized form.
	stripped := normalize.StripQualifiers(norm)
	if stripped != "" {
		for i := range entries {
			if e.stripped[i] == stripped || e.normalized[i] == stripped {
				return &Result{Exercise: &entries[i], Score: scoreQualifierStripped, Tier: TierQualifierStripped}
			}
		}
	}

	// Stage 4: fuzzy scoring over the whole catalog, best score kept.
	if norm == "" {
		return nil
	}
	var (
		best     *catalog.Exercise
		bestVal  float64
		bestDist int
	)
	for i := range entries {
		cand := e.normalized[i]
		if cand == "" {
			continue
		}
		score := fuzzyScore(norm, cand)
		if score < bestVal {
			continue
		}
		dist := fuzzy.LevenshteinDistance(norm, cand)
		// Equal scores fall back to edit distance so ties resolve the same
		// way on every run.
		if score > bestVal || (score == bestVal && (best == nil || dist < bestDist)) {
			best = &entries[i]
			bestVal = score
			bestDist = dist
		}
	}

	if best == nil || bestVal < threshold {
		return nil
	}
	return &Result{Exercise: best, Score: bestVal, Tier: TierFuzzy}
}

// fuzzyScore rates how well two normalized names agree, in [0,1].
func fuzzyScore(input, cand string) float64 {
	// Containment: one name inside the other scores by length ratio with a
	// floor, so "bench" against "incline bench press" still clears 0.7.
	if strings.Contains(input, cand) || strings.Contains(cand, input) {
		shorter, longer := len(input), len(cand)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		ratio := float64(shorter) / float64(longer)
		if ratio < 0.7 {
			return 0.7
		}
		return ratio
	}

	inputWords := scoringWords(input)
	candWords := scoringWords(cand)
	if len(inputWords) == 0 || len(candWords) == 0 {
		return 0
	}

	var points float64
	for _, w := range inputWords {
		if containsWord(candWords, w) {
			points++
			continue
		}
		if containsPartial(candWords, w) {
			points += 0.5
		}
	}

	return 0.7*(points/float64(len(inputWords))) + 0.3*(points/float64(len(candWords)))
}

// scoringWords drops single-character words; they add noise, not signal.
func scoringWords(s string) []string {
	fields := strings.Fields(s)
	out := fields[:0]
	for _, f := range fields {
		if len(f) > 1 {
			out = append(out, f)
		}
	}
	return out
}

func containsWord(words []string, w string) bool {
	for _, cand := range words {
		if cand == w {
			return true
		}
	}
	return false
}

// containsPartial reports whether w is a substring of any word, or any word a
// substring of w.
func containsPartial(words []string, w string) bool {
	for _, cand := range words {
		if strings.Contains(cand, w) || strings.Contains(w, cand) {
			return true
		}
	}
	return false
}
