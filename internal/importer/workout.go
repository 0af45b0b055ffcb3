package importer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/lrendell/fitimport/internal/match"
)

// Defaults applied when the AI output omits or mangles a numeric field.
const (
	defaultSetsCount = 3
	defaultReps      = "10"
	defaultWeight    = ""
)

// equipmentKeywords are matched as substrings against the exercise name and
// equipment field to pick a catalog variant. Longer keywords first so
// "smith machine" wins over "machine".
var equipmentKeywords = []string{
	"smith machine",
	"bodyweight",
	"kettlebell",
	"resistance band",
	"trap bar",
	"dumbbell",
	"barbell",
	"machine",
	"ez bar",
	"cable",
	"band",
}

// Normalizer runs the workout and recipe import paths against one match
// engine. Stateless across calls.
type Normalizer struct {
	engine    *match.Engine
	threshold float64
}

// NewNormalizer builds a Normalizer. A zero threshold means the default for
// AI-authored input.
func NewNormalizer(engine *match.Engine, threshold float64) *Normalizer {
	if threshold == 0 {
		threshold = match.DefaultThreshold
	}
	return &Normalizer{engine: engine, threshold: threshold}
}

// WorkoutResult bundles the canonical workout with its match report and the
// structural validation outcome. The workout is always populated as far as
// the input allows, even when Validation fails.
type WorkoutResult struct {
	Workout    ImportedWorkout
	Report     MatchReport
	Validation ValidationResult
}

// NormalizeWorkout converts an AI-authored workout into a canonical record.
func (n *Normalizer) NormalizeWorkout(in WorkoutInput) WorkoutResult {
	res := WorkoutResult{Validation: validateWorkout(in)}

	// Day order follows the declared dayNumber, not array position.
	days := make([]DayInput, len(in.Days))
	copy(days, in.Days)
	sort.SliceStable(days, func(i, j int) bool { return days[i].DayNumber < days[j].DayNumber })

	normalized := make([]ImportedDay, 0, len(days))
	for i, d := range days {
		day := ImportedDay{
			DayNumber:    d.DayNumber,
			Name:         d.Name,
			MuscleGroups: d.MuscleGroups,
		}
		if day.DayNumber == 0 {
			day.DayNumber = i + 1
		}
		for _, ex := range d.Exercises {
			day.Exercises = append(day.Exercises, n.normalizeExercise(ex, &res.Report))
		}
		normalized = append(normalized, day)
	}

	res.Workout = ImportedWorkout{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Confidence: in.Confidence,
	}

	if isStandalone(in) && len(normalized) > 0 {
		res.Workout.Kind = KindStandalone
		res.Workout.Day = &normalized[0]
	} else {
		res.Workout.Kind = KindProgram
		res.Workout.Days = normalized
	}

	return res
}

// isStandalone resolves the shape once: an explicit flag wins; otherwise a
// single day counts as standalone unless the flag says false.
func isStandalone(in WorkoutInput) bool {
	if in.IsStandalone != nil {
		return *in.IsStandalone
	}
	return len(in.Days) == 1
}

// normalizeExercise builds the set list, resolves the name against the
// catalog and records the outcome in the report.
func (n *Normalizer) normalizeExercise(in ExerciseInput, report *MatchReport) ImportedExercise {
	out := ImportedExercise{
		OriginalName: in.Name,
		Equipment:    in.Equipment,
		Sets:         buildSets(in),
		RestPeriod:   in.RestPeriod,
		Notes:        in.Notes,
	}

	matched := n.engine.FindBestMatch(in.Name, n.threshold)
	if matched == nil {
		out.IsCustom = true
		report.Unmatched = append(report.Unmatched, in.Name)
		return out
	}

	out.Match = matched
	out.MuscleGroups = matched.Exercise.PrimaryMuscles
	if out.Equipment == "" {
		out.Equipment = matched.Exercise.Equipment
	}
	resolveVariant(&out, in)

	report.Matched = append(report.Matched, MatchedExercise{
		OriginalName: in.Name,
		CatalogName:  matched.Exercise.Name,
		Score:        matched.Score,
		Tier:         matched.Tier,
	})
	return out
}

// resolveVariant picks a catalog variant from an equipment hint embedded in
// the exercise name or equipment field. With no confident hit and more than
// one variant, the ambiguity is surfaced instead of guessed away.
func resolveVariant(out *ImportedExercise, in ExerciseInput) {
	variants := out.Match.Exercise.Variants
	if len(variants) == 0 {
		return
	}

	hint := detectEquipmentHint(in.Name + " " + in.Equipment)
	if hint != "" {
		for _, v := range variants {
			if strings.EqualFold(v.Equipment, hint) {
				out.Equipment = v.Equipment
				return
			}
		}
		if strings.EqualFold(out.Match.Exercise.Equipment, hint) {
			// Hint confirms the base entry, nothing to pick.
			out.Equipment = out.Match.Exercise.Equipment
			return
		}
	}

	if len(variants) > 1 {
		out.NeedsVariantSelection = true
	}
}

// detectEquipmentHint returns the first equipment keyword found in s.
func detectEquipmentHint(s string) string {
	s = strings.ToLower(s)
	for _, kw := range equipmentKeywords {
		if strings.Contains(s, kw) {
			return kw
		}
	}
	return ""
}

// buildSets expands the exercise's set plan: an explicit per-set list is
// taken as-is, otherwise (reps, weight) repeats setsCount times.
func buildSets(in ExerciseInput) []Set {
	if len(in.Sets) > 0 {
		sets := make([]Set, 0, len(in.Sets))
		for i, s := range in.Sets {
			sets = append(sets, Set{
				Number: i + 1,
				Reps:   normalizeReps(s.Reps.String()),
				Weight: normalizeWeight(s.Weight.String()),
			})
		}
		return sets
	}

	count := in.SetsCount
	if count <= 0 {
		count = defaultSetsCount
	}
	reps := normalizeReps(in.Reps.String())
	weight := normalizeWeight(in.Weight.String())

	sets := make([]Set, 0, count)
	for i := 0; i < count; i++ {
		sets = append(sets, Set{Number: i + 1, Reps: reps, Weight: weight})
	}
	return sets
}

var (
	reRepRange  = regexp.MustCompile(`^\d+\s*-\s*\d+$`)
	reRepToForm = regexp.MustCompile(`^(\d+)\s+to\s+(\d+)$`)
	reBareInt   = regexp.MustCompile(`^\d+$`)
	reFirstInt  = regexp.MustCompile(`\d+`)
)

// normalizeReps keeps ranges intact: "8-12" stays, "8 to 12" becomes "8-12",
// a bare number stays. Anything else falls back to its first integer, or the
// default.
func normalizeReps(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return defaultReps
	}
	if reBareInt.MatchString(raw) {
		return raw
	}
	if reRepRange.MatchString(raw) {
		return strings.Join(strings.Fields(strings.ReplaceAll(raw, "-", " - ")), "")
	}
	if m := reRepToForm.FindStringSubmatch(raw); m != nil {
		return m[1] + "-" + m[2]
	}
	if m := reFirstInt.FindString(raw); m != "" {
		return m
	}
	return defaultReps
}

func normalizeWeight(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultWeight
	}
	return raw
}
