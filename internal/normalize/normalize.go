// Package normalize reduces free-form exercise names to comparable tokens.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum   = regexp.MustCompile(`[^a-z0-9\s]+`)
	reMultiSpace = regexp.MustCompile(`\s+`)
)

// abbreviations expands common gym shorthand. Applied on word boundaries only,
// so "db" expands but "dumbbell" is left alone.
var abbreviations = map[string]string{
	"db":   "dumbbell",
	"bb":   "barbell",
	"kb":   "kettlebell",
	"ez":   "ez bar",
	"sm":   "smith machine",
	"rdl":  "romanian deadlift",
	"sldl": "stiff leg deadlift",
	"ohp":  "overhead press",
	"bw":   "bodyweight",
	"dl":   "deadlift",
	"ext":  "extension",
	"alt":  "alternating",
}

// noiseWords carry no meaning for matching and are dropped entirely.
var noiseWords = map[string]struct{}{
	"with":  {},
	"using": {},
	"on":    {},
	"the":   {},
	"a":     {},
	"an":    {},
}

// qualifiers are position/stance modifiers stripped only in the permissive
// second pass, so "Seated Cable Row" can still meet "Cable Row".
var qualifiers = []string{
	"single leg",
	"single arm",
	"bent over",
	"one arm",
	"one leg",
	"standing",
	"seated",
	"lying",
	"kneeling",
	"alternating",
	"unilateral",
	"bilateral",
	"reverse grip",
	"close grip",
	"wide grip",
}

// stripDiacritics removes combining marks after NFD decomposition.
func stripDiacritics(s string) string {
	decomp := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomp))
	for _, r := range decomp {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize lowercases, expands abbreviations, drops noise words, strips
// punctuation and collapses whitespace. Idempotent.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// Fold width/compatibility forms, then drop diacritics (é -> e).
	s = norm.NFKC.String(s)
	s = stripDiacritics(s)

	s = strings.ToLower(s)

	// Punctuation becomes a word break so "db-press" splits cleanly.
	s = reNonAlnum.ReplaceAllString(s, " ")

	tokens := strings.Fields(s)
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if _, noise := noiseWords[tok]; noise {
			continue
		}
		if full, ok := abbreviations[tok]; ok {
			parts := strings.Fields(full)
			out = append(out, parts...)
			// Consume input tokens the expansion already supplies, so
			// "ez bar curl" does not become "ez bar bar curl".
			for j := 1; j < len(parts) && i+1 < len(tokens) && tokens[i+1] == parts[j]; j++ {
				i++
			}
			continue
		}
		out = append(out, tok)
	}

	s = strings.Join(out, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// StripQualifiers removes stance/position qualifiers from an already
// normalized token. Multi-word qualifiers are handled before single words.
func StripQualifiers(s string) string {
	if s == "" {
		return ""
	}
	padded := " " + s + " "
	for _, q := range qualifiers {
		padded = strings.ReplaceAll(padded, " "+q+" ", " ")
	}
	s = strings.TrimSpace(padded)
	return reMultiSpace.ReplaceAllString(s, " ")
}
