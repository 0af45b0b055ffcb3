package voice

import (
	"testing"

	"github.com/lrendell/fitimport/internal/catalog"
	"github.com/lrendell/fitimport/internal/match"
)

func testEngine() *match.Engine {
	idx := catalog.Build([]catalog.Exercise{
		{ID: "1", Name: "Bench Press", Equipment: "barbell"},
		{ID: "2", Name: "Squat", Equipment: "barbell"},
		{ID: "3", Name: "Romanian Deadlift", Equipment: "barbell"},
	})
	return match.NewEngine(idx)
}

func setsEqual(t *testing.T, got []Set, want []Set) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d sets %+v, want %d %+v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("set %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseOrdinalTranscript(t *testing.T) {
	res := Parse(testEngine(), "First set 215 pounds 10 reps, second 145 for 3, last 300 for 5", Options{})

	setsEqual(t, res.Sets, []Set{
		{Number: 1, Weight: 215, Reps: 10},
		{Number: 2, Weight: 145, Reps: 3},
		{Number: 3, Weight: 300, Reps: 5},
	})
}

func TestParseSequentialCollapsesDuplicates(t *testing.T) {
	res := Parse(testEngine(), "185x5, 185x5, 195x3", Options{})

	setsEqual(t, res.Sets, []Set{
		{Number: 1, Weight: 185, Reps: 5},
		{Number: 2, Weight: 195, Reps: 3},
	})
}

func TestParseSequentialKeepDuplicates(t *testing.T) {
	res := Parse(testEngine(), "185x5, 185x5, 195x3", Options{KeepDuplicateSets: true})

	setsEqual(t, res.Sets, []Set{
		{Number: 1, Weight: 185, Reps: 5},
		{Number: 2, Weight: 185, Reps: 5},
		{Number: 3, Weight: 195, Reps: 3},
	})
}

func TestParseExerciseExtraction(t *testing.T) {
	t.Run("sets-of phrasing", func(t *testing.T) {
		res := Parse(testEngine(), "3 sets of bench press, first set 185 for 5, second 185 for 5, third 185 for 4", Options{})
		if res.Match == nil || res.Match.Exercise.ID != "1" {
			t.Fatalf("match = %+v", res.Match)
		}
		if len(res.Sets) != 3 {
			t.Errorf("got %d sets", len(res.Sets))
		}
		if res.Confidence != ConfidenceHigh {
			t.Errorf("confidence = %s", res.Confidence)
		}
	})

	t.Run("name before weight-x-reps", func(t *testing.T) {
		res := Parse(testEngine(), "squat 225x5, 245x3", Options{})
		if res.Match == nil || res.Match.Exercise.ID != "2" {
			t.Fatalf("match = %+v", res.Match)
		}
	})

	t.Run("known exercise skips extraction", func(t *testing.T) {
		res := Parse(testEngine(), "first set 100 for 10", Options{KnownExercise: "romanian deadlift"})
		if res.Match == nil || res.Match.Exercise.ID != "3" {
			t.Fatalf("match = %+v", res.Match)
		}
	})
}

func TestParseOrdinalVariants(t *testing.T) {
	t.Run("reps-at-weight phrasing", func(t *testing.T) {
		res := Parse(testEngine(), "first set 10 reps at 135, second set 8 reps at 155", Options{})
		setsEqual(t, res.Sets, []Set{
			{Number: 1, Weight: 135, Reps: 10},
			{Number: 2, Weight: 155, Reps: 8},
		})
	})

	t.Run("numeric ordinal suffixes", func(t *testing.T) {
		res := Parse(testEngine(), "1st 200 for 8, 2nd 210 for 6", Options{})
		setsEqual(t, res.Sets, []Set{
			{Number: 1, Weight: 200, Reps: 8},
			{Number: 2, Weight: 210, Reps: 6},
		})
	})

	t.Run("segments sort by ordinal not speech order", func(t *testing.T) {
		res := Parse(testEngine(), "second 145 for 3, first 215 for 10", Options{})
		setsEqual(t, res.Sets, []Set{
			{Number: 1, Weight: 215, Reps: 10},
			{Number: 2, Weight: 145, Reps: 3},
		})
	})

	t.Run("set numbers always contiguous from 1", func(t *testing.T) {
		res := Parse(testEngine(), "first 100 for 5, third 120 for 3", Options{})
		setsEqual(t, res.Sets, []Set{
			{Number: 1, Weight: 100, Reps: 5},
			{Number: 2, Weight: 120, Reps: 3},
		})
	})
}

func TestParseConfidence(t *testing.T) {
	t.Run("medium without exercise name", func(t *testing.T) {
		res := Parse(testEngine(), "first set 100 for 10", Options{})
		if res.Confidence != ConfidenceMedium {
			t.Errorf("confidence = %s", res.Confidence)
		}
	})

	t.Run("low when name required but missing", func(t *testing.T) {
		res := Parse(testEngine(), "first set 100 for 10", Options{RequireExerciseName: true})
		if res.Confidence != ConfidenceLow {
			t.Errorf("confidence = %s", res.Confidence)
		}
	})

	t.Run("low with no sets", func(t *testing.T) {
		res := Parse(testEngine(), "that was a good session", Options{})
		if res.Confidence != ConfidenceLow {
			t.Errorf("confidence = %s", res.Confidence)
		}
		if len(res.Sets) != 0 {
			t.Errorf("sets = %+v", res.Sets)
		}
	})

	t.Run("declared count mismatch downgrades", func(t *testing.T) {
		res := Parse(testEngine(), "did 4 sets of bench press, first 185 for 5, second 185 for 5", Options{})
		if res.Confidence != ConfidenceMedium {
			t.Errorf("confidence = %s", res.Confidence)
		}
	})
}

func TestExtractPair(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		weight float64
		reps   int
		ok     bool
	}{
		{"weight unit reps", "215 pounds 10 reps", 215, 10, true},
		{"weight unit with reps", "215 pounds with 10", 215, 10, true},
		{"bare weight reps", "215 10", 215, 10, true},
		{"x notation", "185x5", 185, 5, true},
		{"spaced x notation", "185 x 5", 185, 5, true},
		// "for" phrasing must reach the weight-for-reps pattern untouched;
		// a greedy first pattern once split "145" into weight 14, reps 5.
		{"for phrasing", "145 for 3", 145, 3, true},
		{"for phrasing long weight", "300 for 5", 300, 5, true},
		{"reps at weight", "10 reps at 135", 135, 10, true},
		{"decimal weight", "102.5 with 8", 102.5, 8, true},
		{"single number", "145", 0, 0, false},
		{"no numbers", "felt heavy", 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, r, ok := extractPair(tc.in)
			if ok != tc.ok || w != tc.weight || r != tc.reps {
				t.Errorf("extractPair(%q) = (%v, %d, %v), want (%v, %d, %v)",
					tc.in, w, r, ok, tc.weight, tc.reps, tc.ok)
			}
		})
	}
}

func TestDeclaredSetCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"3 sets of squats", 3},
		{"three sets of squats", 3},
		{"did some squats", 0},
		{"twelve sets total", 12},
	}
	for _, tc := range cases {
		if got := declaredSetCount(tc.in); got != tc.want {
			t.Errorf("declaredSetCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
