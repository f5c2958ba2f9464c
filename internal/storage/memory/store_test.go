package memory

import (
	"context"
	"testing"
	"time"

	"github.com/m3rciful/tynys/internal/domain"
)

func TestCheckInsAreCopied(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("ALMT", 5*3600))
	s.SetClock(func() time.Time { return now })

	score := 4
	c := &domain.CheckIn{UserID: 1, Mood: domain.MoodScale, Cause: domain.MoodScale, MoodScore: &score}
	if err := s.SaveCheckIn(ctx, c); err != nil {
		t.Fatalf("SaveCheckIn: %v", err)
	}
	score = 9

	got, _ := s.CheckInsSince(ctx, 1, now.Add(-time.Hour))
	if len(got) != 1 || *got[0].MoodScore != 4 {
		t.Fatalf("stored = %+v", got)
	}
	if got[0].CreatedAt.Location() != time.UTC || !got[0].CreatedAt.Equal(now) {
		t.Fatalf("created_at = %v", got[0].CreatedAt)
	}
	if got, _ := s.CheckInsSince(ctx, 1, now.Add(time.Second)); len(got) != 0 {
		t.Fatalf("since filter returned %d", len(got))
	}
}

func TestStressResultsNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		_ = s.SaveStressResult(ctx, &domain.StressResult{UserID: 1, Score: i})
	}
	_ = s.SaveStressResult(ctx, &domain.StressResult{UserID: 2, Score: 7})

	got, _ := s.StressResults(ctx, 1, 3)
	if len(got) != 3 || got[0].Score != 3 || got[2].Score != 1 {
		t.Fatalf("results = %+v", got)
	}
}

func TestLanguage(t *testing.T) {
	s := New()
	ctx := context.Background()
	if _, ok, _ := s.Language(ctx, 1); ok {
		t.Fatal("unexpected language")
	}
	_ = s.SetLanguage(ctx, 1, domain.LangRussian)
	if lang, ok, _ := s.Language(ctx, 1); !ok || lang != domain.LangRussian {
		t.Fatalf("Language = %q, %v", lang, ok)
	}
}
