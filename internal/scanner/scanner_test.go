package scanner

import (
	"testing"

	"github.com/lrendell/fitimport/internal/catalog"
)

func testIndex() *catalog.Index {
	return catalog.Build([]catalog.Exercise{
		{ID: "1", Name: "Bench Press", Equipment: "barbell"},
		{ID: "2", Name: "Incline Bench Press", Equipment: "barbell"},
		{ID: "3", Name: "Squat", Equipment: "barbell"},
		{ID: "4", Name: "Row", Equipment: "cable"},
	})
}

func TestFindAllMentions(t *testing.T) {
	idx := testIndex()

	t.Run("longest name wins over nested shorter one", func(t *testing.T) {
		got := FindAllMentions(idx, "Try Incline Bench Press today")
		if len(got) != 1 {
			t.Fatalf("got %d mentions, want 1: %+v", len(got), got)
		}
		if got[0].Exercise.ID != "2" {
			t.Errorf("matched %q", got[0].Exercise.Name)
		}
		if got[0].Name != "Incline Bench Press" {
			t.Errorf("mention text %q", got[0].Name)
		}
	})

	t.Run("multiple mentions sorted by position", func(t *testing.T) {
		got := FindAllMentions(idx, "Squat first, then bench press, then squat again")
		if len(got) != 3 {
			t.Fatalf("got %d mentions: %+v", len(got), got)
		}
		for i := 1; i < len(got); i++ {
			if got[i].Start < got[i-1].End {
				t.Errorf("mentions overlap or unsorted: %+v", got)
			}
		}
		if got[0].Exercise.ID != "3" || got[1].Exercise.ID != "1" || got[2].Exercise.ID != "3" {
			t.Errorf("wrong order: %+v", got)
		}
	})

	t.Run("case-insensitive with original casing kept", func(t *testing.T) {
		got := FindAllMentions(idx, "did some BENCH PRESS")
		if len(got) != 1 || got[0].Name != "BENCH PRESS" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("requires word boundaries", func(t *testing.T) {
		// "Row" must not match inside "Rowing" or "grown".
		got := FindAllMentions(idx, "growling while rowing")
		if len(got) != 0 {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("boundary at string edges", func(t *testing.T) {
		got := FindAllMentions(idx, "squat")
		if len(got) != 1 || got[0].Start != 0 || got[0].End != 5 {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		if got := FindAllMentions(idx, ""); got != nil {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("punctuation is a boundary", func(t *testing.T) {
		got := FindAllMentions(idx, "squat,row")
		if len(got) != 2 {
			t.Fatalf("got %+v", got)
		}
	})
}
