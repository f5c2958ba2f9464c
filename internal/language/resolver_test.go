package language

import (
	"context"
	"errors"
	"testing"

	"github.com/m3rciful/tynys/internal/storage/memory"
)

type failingStore struct{}

func (failingStore) Language(context.Context, int64) (string, bool, error) {
	return "", false, errors.New("db down")
}

func (failingStore) SetLanguage(context.Context, int64, string) error {
	return errors.New("db down")
}

func TestResolveUsesCache(t *testing.T) {
	store := memory.New()
	_ = store.SetLanguage(context.Background(), 1, "kk")
	r := NewResolver(store, "kk")

	cached := "ru"
	if got := r.Resolve(context.Background(), 1, &cached); got != "ru" {
		t.Fatalf("Resolve = %q, want cached ru", got)
	}
}

func TestResolveFallsBackToStoreThenDefault(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	_ = store.SetLanguage(ctx, 1, "ru")
	_ = store.SetLanguage(ctx, 2, "xx-invalid")
	r := NewResolver(store, "kk")

	cached := "xx-invalid"
	if got := r.Resolve(ctx, 1, &cached); got != "ru" || cached != "ru" {
		t.Fatalf("Resolve = %q (cached %q), want ru", got, cached)
	}

	var fresh string
	if got := r.Resolve(ctx, 2, &fresh); got != "kk" || fresh != "kk" {
		t.Fatalf("invalid stored code: Resolve = %q (cached %q), want kk", got, fresh)
	}

	var none string
	if got := r.Resolve(ctx, 3, &none); got != "kk" {
		t.Fatalf("missing preference: Resolve = %q, want kk", got)
	}
}

func TestResolveStoreErrorDoesNotCache(t *testing.T) {
	r := NewResolver(failingStore{}, "kk")
	var cached string
	if got := r.Resolve(context.Background(), 1, &cached); got != "kk" {
		t.Fatalf("Resolve = %q, want default", got)
	}
	if cached != "" {
		t.Fatalf("cache written on store error: %q", cached)
	}
}

func TestUpdateNormalizesInvalidCode(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	r := NewResolver(store, "kk")

	cached := "ru"
	got, err := r.Update(ctx, 7, "xx-invalid", &cached)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got != "kk" || cached != "kk" {
		t.Fatalf("Update = %q (cached %q), want kk", got, cached)
	}
	stored, ok, _ := store.Language(ctx, 7)
	if !ok || stored != "kk" {
		t.Fatalf("stored = %q, %v; invalid code must never be stored", stored, ok)
	}
}

func TestUpdateStoreError(t *testing.T) {
	r := NewResolver(failingStore{}, "ru")
	cached := "kk"
	got, err := r.Update(context.Background(), 1, "ru", &cached)
	if err == nil {
		t.Fatal("expected error")
	}
	if got != "ru" || cached != "kk" {
		t.Fatalf("got %q cached %q", got, cached)
	}
}

func TestNewResolverRejectsUnsupportedDefault(t *testing.T) {
	if d := NewResolver(memory.New(), "en").Default(); d != "kk" {
		t.Fatalf("Default = %q, want kk", d)
	}
}
