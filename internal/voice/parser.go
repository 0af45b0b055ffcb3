// Package voice extracts exercise and set data from spoken-workout transcripts.
package voice

import (
	"sort"
	"strings"

	"github.com/lrendell/fitimport/internal/match"
)

// DefaultThreshold is looser than the AI-JSON one; transcripts are noisy.
const DefaultThreshold = 0.4

// Confidence grades how trustworthy a parse is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Set is one parsed set. Numbers form a contiguous ascending run from 1
// after parsing.
type Set struct {
	Number int     `json:"setNumber"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// Options tune a single Parse call.
type Options struct {
	// RequireExerciseName lowers confidence when no exercise can be resolved.
	RequireExerciseName bool
	// KnownExercise skips name extraction; the caller already knows it.
	KnownExercise string
	// Threshold for resolving the extracted name. Zero means DefaultThreshold.
	Threshold float64
	// KeepDuplicateSets disables exact (weight, reps) duplicate collapsing in
	// the sequential strategy.
	KeepDuplicateSets bool
}

// Result is the outcome of parsing one transcript.
type Result struct {
	ExerciseName string
	Match        *match.Result
	Sets         []Set
	Confidence   Confidence
}

// Parse extracts an exercise name and set list from transcript. The ordinal
// strategy ("first set ... second ...") runs first; only when it finds no
// ordinal markers does the positional sequential scan take over.
func Parse(engine *match.Engine, transcript string, opts Options) Result {
	text := strings.ToLower(strings.TrimSpace(transcript))

	if opts.Threshold == 0 {
		opts.Threshold = DefaultThreshold
	}

	declared := declaredSetCount(text)

	name := opts.KnownExercise
	if name == "" {
		name = extractExerciseCandidate(text)
	}

	var matched *match.Result
	if name != "" && engine != nil {
		matched = engine.FindBestMatch(name, opts.Threshold)
	}

	sets := parseOrdinalSets(text)
	if len(sets) == 0 {
		sets = parseSequentialSets(text, opts.KeepDuplicateSets)
	}

	res := Result{
		ExerciseName: name,
		Match:        matched,
		Sets:         sets,
	}
	res.Confidence = grade(res, opts, declared)
	return res
}

// parseOrdinalSets splits the transcript on clause boundaries and reads one
// set per ordinal-marked segment. Returns nil when no segment carries an
// ordinal, leaving the transcript to the sequential strategy.
func parseOrdinalSets(text string) []Set {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == ','
	})

	var (
		sets        []Set
		sawOrdinal  bool
		maxExplicit int
	)
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		num, rest, ok := findOrdinal(seg)
		if ok {
			sawOrdinal = true
		} else {
			// No marker: next free slot after what we have so far.
			num = len(sets) + 1
		}

		weight, reps, found := extractPair(rest)
		if !found {
			continue
		}

		if num > maxExplicit {
			maxExplicit = num
		}
		sets = append(sets, Set{Number: num, Weight: weight, Reps: reps})
	}

	if !sawOrdinal || len(sets) == 0 {
		return nil
	}

	// "last"/"final" resolve to one past the highest explicit ordinal.
	next := maxExplicit + 1
	for i := range sets {
		if sets[i].Number == -1 {
			sets[i].Number = next
			next++
		}
	}

	sort.Slice(sets, func(i, j int) bool { return sets[i].Number < sets[j].Number })
	renumber(sets)
	return sets
}

// parseSequentialSets scans the whole transcript for weight/rep pairs in
// order of appearance. Exact (weight, reps) repeats collapse to one set
// unless keepDuplicates is set.
func parseSequentialSets(text string, keepDuplicates bool) []Set {
	type hit struct {
		start  int
		end    int
		weight float64
		reps   int
	}

	var hits []hit
	for _, p := range globalPatterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			w, r, ok := pairFromIndex(text, loc)
			if !ok {
				continue
			}
			hits = append(hits, hit{start: loc[0], end: loc[1], weight: w, reps: r})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	var (
		sets    []Set
		lastEnd = -1
	)
	seen := make(map[[2]float64]struct{})
	for _, h := range hits {
		if h.start < lastEnd {
			continue // same span matched by a later pattern
		}
		lastEnd = h.end

		key := [2]float64{h.weight, float64(h.reps)}
		if _, dup := seen[key]; dup && !keepDuplicates {
			continue
		}
		seen[key] = struct{}{}

		sets = append(sets, Set{Number: len(sets) + 1, Weight: h.weight, Reps: h.reps})
	}
	return sets
}

func renumber(sets []Set) {
	for i := range sets {
		sets[i].Number = i + 1
	}
}

// grade applies the confidence ladder, then knocks it down a level when the
// speaker declared a set count the parse disagrees with.
func grade(res Result, opts Options, declared int) Confidence {
	level := ConfidenceLow
	switch {
	case res.Match != nil && res.Match.Score >= 0.7 && len(res.Sets) > 0:
		level = ConfidenceHigh
	case (res.Match != nil || !opts.RequireExerciseName) && len(res.Sets) > 0:
		level = ConfidenceMedium
	}

	if declared > 0 && declared != len(res.Sets) {
		level = downgrade(level)
	}
	return level
}

func downgrade(c Confidence) Confidence {
	switch c {
	case ConfidenceHigh:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
