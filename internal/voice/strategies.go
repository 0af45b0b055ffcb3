package voice

import (
	"regexp"
	"strconv"
	"strings"
)

// A setPattern extracts one (weight, reps) pair from a transcript segment.
// Patterns are tried in priority order; the first hit wins.
type setPattern struct {
	name string
	re   *regexp.Regexp
	// repsFirst flips the capture groups for "10 reps at 215" style phrasing.
	repsFirst bool
}

const unitExpr = `(?:lbs?|pounds?|kgs?|kilos?|kilograms?)`

// segmentPatterns handle a single ordinal segment, e.g. "first set 215 pounds 10 reps".
var segmentPatterns = []setPattern{
	{
		// The whitespace between the captures is mandatory: with every
		// separator optional, a lone numeral like "145" backtracks into
		// both groups ("14" + "5").
		name: "weight-unit-reps",
		re:   regexp.MustCompile(`(\d+(?:\.\d+)?)\s+(?:` + unitExpr + `\s+)?(?:with\s+|at\s+)?(\d+)(?:\s*reps?)?\b`),
	},
	{
		name: "weight-x-reps",
		re:   regexp.MustCompile(`(\d+(?:\.\d+)?)\s*` + unitExpr + `?\s*[x×]\s*(\d+)`),
	},
	{
		name:      "reps-at-weight",
		re:        regexp.MustCompile(`(\d+)\s*reps?\s*(?:at|@|with)\s*(\d+(?:\.\d+)?)`),
		repsFirst: true,
	},
	{
		name: "weight-for-reps",
		re:   regexp.MustCompile(`(\d+(?:\.\d+)?)\s*` + unitExpr + `?\s+(?:for|with)\s+(\d+)\b`),
	},
}

// globalPatterns drive the sequential fallback: they are scanned across the
// whole transcript rather than per segment.
var globalPatterns = []setPattern{
	{
		name: "weight-x-reps",
		re:   regexp.MustCompile(`(\d+(?:\.\d+)?)\s*` + unitExpr + `?\s*[x×]\s*(\d+)`),
	},
	{
		name: "weight-for-reps",
		re:   regexp.MustCompile(`(\d+(?:\.\d+)?)\s*` + unitExpr + `?\s+(?:for|with)\s+(\d+)\b`),
	},
}

// extractPair runs the segment patterns in order against s.
func extractPair(s string) (weight float64, reps int, ok bool) {
	for _, p := range segmentPatterns {
		m := p.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		first, second := m[1], m[2]
		if p.repsFirst {
			first, second = second, first
		}
		w, errW := strconv.ParseFloat(first, 64)
		r, errR := strconv.Atoi(second)
		if errW != nil || errR != nil {
			continue
		}
		return w, r, true
	}
	return 0, 0, false
}

// pairFromIndex decodes the two capture groups of a global-pattern match.
func pairFromIndex(text string, loc []int) (weight float64, reps int, ok bool) {
	if len(loc) < 6 || loc[2] < 0 || loc[4] < 0 {
		return 0, 0, false
	}
	w, errW := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
	r, errR := strconv.Atoi(text[loc[4]:loc[5]])
	if errW != nil || errR != nil {
		return 0, 0, false
	}
	return w, r, true
}

// ordinalWords map spoken position markers to set numbers. "last" and "final"
// carry the sentinel -1 and are resolved after all segments are read.
var ordinalWords = map[string]int{
	"first": 1, "1st": 1,
	"second": 2, "2nd": 2,
	"third": 3, "3rd": 3,
	"fourth": 4, "4th": 4,
	"fifth": 5, "5th": 5,
	"last": -1, "final": -1,
}

var reOrdinalSuffix = regexp.MustCompile(`^(\d+)(?:st|nd|rd|th)$`)

// findOrdinal scans a segment for an ordinal marker. It returns the set
// number, the segment with the marker (and a trailing "set") removed, and
// whether a marker was present.
func findOrdinal(segment string) (int, string, bool) {
	words := strings.Fields(segment)
	for i, w := range words {
		n, ok := ordinalWords[w]
		if !ok {
			if m := reOrdinalSuffix.FindStringSubmatch(w); m != nil {
				n, _ = strconv.Atoi(m[1])
				ok = true
			}
		}
		if !ok {
			continue
		}

		rest := append([]string{}, words[:i]...)
		tail := words[i+1:]
		if len(tail) > 0 && (tail[0] == "set" || tail[0] == "sets") {
			tail = tail[1:]
		}
		rest = append(rest, tail...)
		return n, strings.Join(rest, " "), true
	}
	return 0, segment, false
}

// numberWords cover the spoken counts that show up before "sets".
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12,
}

var reDeclaredCount = regexp.MustCompile(`\b(\d+|[a-z]+)\s+sets\b`)

// declaredSetCount pulls "3 sets" / "three sets" out of the transcript.
// Used only for the confidence consistency check, never to pad results.
func declaredSetCount(transcript string) int {
	m := reDeclaredCount.FindStringSubmatch(transcript)
	if m == nil {
		return 0
	}
	if n, err := strconv.Atoi(m[1]); err == nil {
		return n
	}
	if n, ok := numberWords[m[1]]; ok {
		return n
	}
	return 0
}

// Exercise-name candidate patterns, in priority order.
var (
	reNameAfterSetsOf = regexp.MustCompile(`sets\s+of\s+([a-z][a-z\s]*?)(?:\s*[,.]|\s+\d|$)`)
	reNameBeforePair  = regexp.MustCompile(`\b([a-z][a-z\s]+?)\s+\d+(?:\.\d+)?\s*` + unitExpr + `?\s*[x×]\s*\d+`)
	reNameAfterVerb   = regexp.MustCompile(`\b(?:did|on|for)\s+([a-z][a-z\s]*?)(?:\s*[,.]|\s+\d|$)`)
)

// nameStopWords never start or end an exercise phrase.
var nameStopWords = map[string]struct{}{
	"i": {}, "just": {}, "today": {}, "some": {}, "my": {}, "did": {},
	"the": {}, "sets": {}, "set": {}, "reps": {}, "then": {}, "and": {},
}

// extractExerciseCandidate pulls the most likely exercise phrase from the
// transcript. Returns "" when no pattern produces a usable phrase.
func extractExerciseCandidate(transcript string) string {
	for _, re := range []*regexp.Regexp{reNameAfterSetsOf, reNameBeforePair, reNameAfterVerb} {
		m := re.FindStringSubmatch(transcript)
		if m == nil {
			continue
		}
		if phrase := trimStopWords(m[1]); phrase != "" {
			return phrase
		}
	}
	return ""
}

// trimStopWords removes leading/trailing stop words from a candidate phrase.
func trimStopWords(phrase string) string {
	words := strings.Fields(phrase)
	for len(words) > 0 {
		if _, stop := nameStopWords[words[0]]; !stop {
			break
		}
		words = words[1:]
	}
	for len(words) > 0 {
		if _, stop := nameStopWords[words[len(words)-1]]; !stop {
			break
		}
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}
