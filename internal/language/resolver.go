// Package language resolves and updates a user's preferred message language.
package language

import (
	"context"
	"log/slog"

	"github.com/m3rciful/tynys/core/logger"
	"github.com/m3rciful/tynys/internal/domain"
)

// Store persists language preferences.
type Store interface {
	Language(ctx context.Context, userID int64) (string, bool, error)
	SetLanguage(ctx context.Context, userID int64, lang string) error
}

// Resolver picks the language used to render replies for a user.
type Resolver struct {
	store Store
	def   string
}

// NewResolver returns a resolver falling back to def. An unsupported def
// becomes Kazakh.
func NewResolver(store Store, def string) *Resolver {
	if !domain.IsSupportedLanguage(def) {
		def = domain.LangKazakh
	}
	return &Resolver{store: store, def: def}
}

// Default returns the fallback language code.
func (r *Resolver) Default() string {
	return r.def
}

// Normalize maps any code outside the supported set to the default.
func (r *Resolver) Normalize(code string) string {
	if domain.IsSupportedLanguage(code) {
		return code
	}
	return r.def
}

// Resolve returns the cached code when it is supported, otherwise the stored
// preference, otherwise the default. The result is written into *cached.
// Storage failures are logged and yield the default without caching it, so
// the next update retries the lookup.
func (r *Resolver) Resolve(ctx context.Context, userID int64, cached *string) string {
	if cached != nil && domain.IsSupportedLanguage(*cached) {
		return *cached
	}

	lang, ok, err := r.store.Language(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "flow", "language.resolve",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
		return r.def
	}
	if !ok || !domain.IsSupportedLanguage(lang) {
		lang = r.def
	}
	if cached != nil {
		*cached = lang
	}
	return lang
}

// Update normalizes requested, persists it and refreshes *cached. The
// effective code is returned even when persisting fails; the cache is only
// touched on success.
func (r *Resolver) Update(ctx context.Context, userID int64, requested string, cached *string) (string, error) {
	lang := r.Normalize(requested)
	if err := r.store.SetLanguage(ctx, userID, lang); err != nil {
		return lang, err
	}
	if cached != nil {
		*cached = lang
	}
	return lang, nil
}
