package quiz

import (
	"errors"
	"testing"

	"github.com/m3rciful/tynys/internal/domain"
)

func TestClassifyMonotonic(t *testing.T) {
	ranges := []Range{
		{Max: 3, Level: "L1", Advice: "A1"},
		{Max: 6, Level: "L2", Advice: "A2"},
		{Max: 10, Level: "L3", Advice: "A3"},
	}
	tests := []struct {
		score int
		want  string
	}{
		{0, "L1"},
		{3, "L1"},
		{4, "L2"},
		{6, "L2"},
		{7, "L3"},
		{10, "L3"},
	}
	for _, tt := range tests {
		got, err := Classify(ranges, tt.score)
		if err != nil {
			t.Fatalf("Classify(%d): %v", tt.score, err)
		}
		if got.Level != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.score, got.Level, tt.want)
		}
	}

	if _, err := Classify(ranges, 11); !errors.Is(err, ErrNoRange) {
		t.Fatalf("Classify(11) err = %v, want ErrNoRange", err)
	}
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name   string
		ranges []Range
		total  int
		ok     bool
	}{
		{"contiguous", []Range{{Max: 3, Level: "a"}, {Max: 6, Level: "b"}, {Max: 10, Level: "c"}}, 10, true},
		{"short", []Range{{Max: 3, Level: "a"}, {Max: 6, Level: "b"}}, 10, false},
		{"descending", []Range{{Max: 6, Level: "a"}, {Max: 3, Level: "b"}, {Max: 10, Level: "c"}}, 10, false},
		{"duplicate bound", []Range{{Max: 3, Level: "a"}, {Max: 3, Level: "b"}, {Max: 10, Level: "c"}}, 10, false},
		{"empty level", []Range{{Max: 10}}, 10, false},
		{"none", nil, 10, false},
	}
	for _, tt := range tests {
		err := ValidateRanges(tt.ranges, tt.total)
		if (err == nil) != tt.ok {
			t.Errorf("%s: err = %v, ok want %v", tt.name, err, tt.ok)
		}
	}
}

func TestCatalogsValid(t *testing.T) {
	if err := ValidateCatalogs(); err != nil {
		t.Fatalf("ValidateCatalogs: %v", err)
	}
}

func TestEveryScoreSequenceClassifies(t *testing.T) {
	for _, lang := range domain.SupportedLanguages {
		for _, key := range Keys {
			d, ok := Lookup(lang, key)
			if !ok {
				t.Fatalf("%s/%s missing", lang, key)
			}
			// Every reachable score 0..total must map to a range.
			for score := 0; score <= d.Total(); score++ {
				if _, err := d.Classify(score); err != nil {
					t.Errorf("%s/%s score %d: %v", lang, key, score, err)
				}
			}
		}
	}
}

func TestStressBands(t *testing.T) {
	tests := map[int]string{0: LevelLow, 2: LevelLow, 3: LevelMedium, 4: LevelMedium, 5: LevelMedium, 6: LevelHigh, 7: LevelHigh}
	for score, want := range tests {
		got, err := Classify(StressBands, score)
		if err != nil || got.Level != want {
			t.Errorf("stress score %d = %q, %v; want %q", score, got.Level, err, want)
		}
	}
}

func TestLookupFallsBackToKazakh(t *testing.T) {
	d, ok := Lookup("xx", KeyCareer)
	if !ok || d.Title != kazakhQuizzes[KeyCareer].Title {
		t.Fatalf("Lookup fallback = %+v, %v", d, ok)
	}
	if _, ok := Lookup("ru", "nope"); ok {
		t.Fatal("unknown quiz found")
	}
}

func TestHeader(t *testing.T) {
	d := Definition{Title: "T", Badge: "B"}
	if d.Header() != "B T" {
		t.Fatalf("Header = %q", d.Header())
	}
	if (Definition{Title: "T"}).Header() != "T" {
		t.Fatal("header without badge")
	}
}
