package sqlstore

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/m3rciful/tynys/core/database"
	"github.com/m3rciful/tynys/internal/domain"
)

func openSQLite(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	cfg := database.Config{
		Driver:        database.DriverSQLite,
		Path:          filepath.Join(t.TempDir(), "tynys.db"),
		MigrationsDir: filepath.Join("..", "..", "..", "migrations"),
	}
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := database.RunMigrations(ctx, cfg); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func TestCheckIns(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	score := 6
	records := []*domain.CheckIn{
		{UserID: 1, CreatedAt: base.Add(-10 * 24 * time.Hour), Mood: "bad", Cause: "work"},
		{UserID: 1, CreatedAt: base.Add(2 * time.Hour), Mood: "great", Cause: "family"},
		{UserID: 1, CreatedAt: base, Mood: domain.MoodScale, Cause: domain.MoodScale, MoodScore: &score},
		{UserID: 2, CreatedAt: base, Mood: "okay", Cause: "sleep"},
	}
	for _, c := range records {
		if err := s.SaveCheckIn(ctx, c); err != nil {
			t.Fatalf("SaveCheckIn: %v", err)
		}
		if c.ID == "" {
			t.Fatal("id not assigned")
		}
	}

	got, err := s.CheckInsSince(ctx, 1, base.Add(-7*24*time.Hour))
	if err != nil {
		t.Fatalf("CheckInsSince: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d checkins, want 2", len(got))
	}
	if got[0].Mood != domain.MoodScale || got[0].MoodScore == nil || *got[0].MoodScore != 6 {
		t.Fatalf("first = %+v", got[0])
	}
	if got[1].Mood != "great" || got[1].MoodScore != nil || !got[1].CreatedAt.Equal(base.Add(2*time.Hour)) {
		t.Fatalf("second = %+v", got[1])
	}
}

func TestStressResults(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		r := &domain.StressResult{
			UserID:    9,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Score:     i,
			Level:     "low",
			Details:   []string{"q1 - Иә", "q2 - Жоқ, мүмкін"},
		}
		if err := s.SaveStressResult(ctx, r); err != nil {
			t.Fatalf("SaveStressResult: %v", err)
		}
	}

	got, err := s.StressResults(ctx, 9, 2)
	if err != nil {
		t.Fatalf("StressResults: %v", err)
	}
	if len(got) != 2 || got[0].Score != 2 || got[1].Score != 1 {
		t.Fatalf("results = %+v", got)
	}
	if want := []string{"q1 - Иә", "q2 - Жоқ, мүмкін"}; !reflect.DeepEqual([]string(got[0].Details), want) {
		t.Fatalf("details = %q", got[0].Details)
	}
}

func TestLanguageUpsert(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()

	if _, ok, err := s.Language(ctx, 3); err != nil || ok {
		t.Fatalf("Language on empty = ok %v, err %v", ok, err)
	}
	for _, lang := range []string{domain.LangRussian, domain.LangKazakh} {
		if err := s.SetLanguage(ctx, 3, lang); err != nil {
			t.Fatalf("SetLanguage(%s): %v", lang, err)
		}
	}
	lang, ok, err := s.Language(ctx, 3)
	if err != nil || !ok || lang != domain.LangKazakh {
		t.Fatalf("Language = %q, %v, %v", lang, ok, err)
	}
}
