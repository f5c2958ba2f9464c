package texts

import (
	"testing"

	"github.com/m3rciful/tynys/internal/domain"
)

func TestTablesAreComplete(t *testing.T) {
	for lang, tbl := range tables {
		for key := range kazakh.messages {
			if _, ok := tbl.messages[key]; !ok {
				t.Errorf("%s: missing message %q", lang, key)
			}
		}
		for key, list := range kazakh.lists {
			if len(tbl.lists[key]) != len(list) {
				t.Errorf("%s: list %q has %d items, want %d", lang, key, len(tbl.lists[key]), len(list))
			}
		}
		if len(tbl.moods) != 6 || len(tbl.causes) != 6 || len(tbl.answers) != 2 {
			t.Errorf("%s: unexpected option counts", lang)
		}
	}
}

func TestStressQuestionsCount(t *testing.T) {
	for _, lang := range domain.SupportedLanguages {
		if n := len(List(lang, StressQuestions)); n != 7 {
			t.Errorf("%s: %d stress questions, want 7", lang, n)
		}
	}
}

func TestMenuActionAcrossLanguages(t *testing.T) {
	for _, lang := range domain.SupportedLanguages {
		seen := map[Action]bool{}
		for _, row := range lookup(lang).menu {
			for _, item := range row {
				got, ok := MenuAction(item.Label)
				if !ok || got != item.Action {
					t.Errorf("%s: MenuAction(%q) = %q, %v", lang, item.Label, got, ok)
				}
				seen[item.Action] = true
			}
		}
		if len(seen) != 12 {
			t.Errorf("%s: menu has %d distinct actions, want 12", lang, len(seen))
		}
	}
	if _, ok := MenuAction("hello"); ok {
		t.Error("free text must not map to a menu action")
	}
}

func TestQuizKey(t *testing.T) {
	if key, ok := ActionQuizCareer.QuizKey(); !ok || key != "career" {
		t.Fatalf("QuizKey = %q, %v", key, ok)
	}
	if _, ok := ActionStats.QuizKey(); ok {
		t.Fatal("stats is not a quiz action")
	}
}

func TestFallbacks(t *testing.T) {
	if Get("xx", Greeting) != Get(domain.LangKazakh, Greeting) {
		t.Error("unknown language should fall back to Kazakh")
	}
	if got := Get(domain.LangRussian, Key("no_such_key")); got != "no_such_key" {
		t.Errorf("missing key rendered as %q", got)
	}
	if got := CauseLabel(domain.LangRussian, domain.MoodScale); got != "Оценка по шкале" {
		t.Errorf("scale cause label = %q", got)
	}
	if got := Label(Causes(domain.LangKazakh), "mystery"); got != "mystery" {
		t.Errorf("unknown value label = %q", got)
	}
	if Quote(domain.LangRussian) == "" {
		t.Error("empty quote")
	}
}
