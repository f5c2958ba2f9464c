// Package sqlstore persists check-ins, stress results and language
// preferences through sqlx. Queries are written with '?' placeholders and
// rebound per driver, so the same store serves postgres and sqlite3.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/tynys/core/logger"
	"github.com/m3rciful/tynys/internal/domain"
)

// Store is a SQL-backed repository.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// New wraps an open sqlx handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) stamp(t time.Time) time.Time {
	if t.IsZero() {
		t = s.now()
	}
	return t.UTC()
}

// SaveCheckIn inserts a check-in, assigning id and timestamp when empty.
func (s *Store) SaveCheckIn(ctx context.Context, c *domain.CheckIn) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = s.stamp(c.CreatedAt)
	q := s.db.Rebind(`INSERT INTO checkins (id, user_id, created_at, mood, cause, mood_score) VALUES (?, ?, ?, ?, ?, ?)`)
	start := time.Now()
	if _, err := s.db.ExecContext(ctx, q, c.ID, c.UserID, c.CreatedAt, c.Mood, c.Cause, c.MoodScore); err != nil {
		logger.Error(ctx, "store", "checkin.insert",
			slog.String("status", "fail"),
			slog.Int64("user_id", c.UserID),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("insert checkin: %w", err)
	}
	logger.Debug(ctx, "store", "checkin.insert",
		slog.String("status", "ok"),
		slog.Int64("user_id", c.UserID),
		slog.Duration("duration", logger.Took(start)),
	)
	return nil
}

// CheckInsSince returns the user's check-ins created at or after since, oldest first.
func (s *Store) CheckInsSince(ctx context.Context, userID int64, since time.Time) ([]domain.CheckIn, error) {
	q := s.db.Rebind(`SELECT id, user_id, created_at, mood, cause, mood_score
		FROM checkins WHERE user_id = ? AND created_at >= ? ORDER BY created_at ASC`)
	var out []domain.CheckIn
	if err := s.db.SelectContext(ctx, &out, q, userID, since.UTC()); err != nil {
		return nil, fmt.Errorf("select checkins: %w", err)
	}
	for i := range out {
		out[i].CreatedAt = out[i].CreatedAt.UTC()
	}
	return out, nil
}

// SaveStressResult inserts a completed stress test.
func (s *Store) SaveStressResult(ctx context.Context, r *domain.StressResult) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.CreatedAt = s.stamp(r.CreatedAt)
	q := s.db.Rebind(`INSERT INTO stress_results (id, user_id, created_at, score, level, details) VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, q, r.ID, r.UserID, r.CreatedAt, r.Score, r.Level, r.Details); err != nil {
		logger.Error(ctx, "store", "stress.insert",
			slog.String("status", "fail"),
			slog.Int64("user_id", r.UserID),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("insert stress result: %w", err)
	}
	return nil
}

// StressResults returns up to limit most recent results of the user.
func (s *Store) StressResults(ctx context.Context, userID int64, limit int) ([]domain.StressResult, error) {
	if limit <= 0 {
		limit = 10
	}
	q := s.db.Rebind(`SELECT id, user_id, created_at, score, level, details
		FROM stress_results WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`)
	var out []domain.StressResult
	if err := s.db.SelectContext(ctx, &out, q, userID, limit); err != nil {
		return nil, fmt.Errorf("select stress results: %w", err)
	}
	return out, nil
}

// Language returns the stored language preference. ok is false when none exists.
func (s *Store) Language(ctx context.Context, userID int64) (string, bool, error) {
	var lang string
	err := s.db.GetContext(ctx, &lang, s.db.Rebind(`SELECT language FROM user_settings WHERE user_id = ?`), userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select language: %w", err)
	}
	return lang, true, nil
}

// SetLanguage upserts the language preference.
func (s *Store) SetLanguage(ctx context.Context, userID int64, lang string) error {
	q := s.db.Rebind(`INSERT INTO user_settings (user_id, language, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET language = excluded.language, updated_at = excluded.updated_at`)
	if _, err := s.db.ExecContext(ctx, q, userID, lang, s.now().UTC()); err != nil {
		return fmt.Errorf("upsert language: %w", err)
	}
	logger.Info(ctx, "store", "language.set",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.String("lang", lang),
	)
	return nil
}
