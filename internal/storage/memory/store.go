// Package memory is an in-process store used for local runs without a
// database and in tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m3rciful/tynys/internal/domain"
)

// Store keeps every record in memory. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	checkins  []domain.CheckIn
	stress    []domain.StressResult
	languages map[int64]string
	now       func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{languages: make(map[int64]string), now: time.Now}
}

// SetClock replaces the clock used to stamp records.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SaveCheckIn appends a check-in.
func (s *Store) SaveCheckIn(_ context.Context, c *domain.CheckIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	c.CreatedAt = c.CreatedAt.UTC()
	cp := *c
	if c.MoodScore != nil {
		v := *c.MoodScore
		cp.MoodScore = &v
	}
	s.checkins = append(s.checkins, cp)
	return nil
}

// CheckInsSince returns the user's check-ins at or after since, oldest first.
func (s *Store) CheckInsSince(_ context.Context, userID int64, since time.Time) ([]domain.CheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.CheckIn
	for _, c := range s.checkins {
		if c.UserID == userID && !c.CreatedAt.Before(since) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// CheckIns returns every stored check-in of the user.
func (s *Store) CheckIns(userID int64) []domain.CheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.CheckIn
	for _, c := range s.checkins {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}

// SaveStressResult appends a stress test result.
func (s *Store) SaveStressResult(_ context.Context, r *domain.StressResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	r.CreatedAt = r.CreatedAt.UTC()
	cp := *r
	cp.Details = append([]string(nil), r.Details...)
	s.stress = append(s.stress, cp)
	return nil
}

// StressResults returns up to limit most recent results of the user.
func (s *Store) StressResults(_ context.Context, userID int64, limit int) ([]domain.StressResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.StressResult
	for i := len(s.stress) - 1; i >= 0; i-- {
		if s.stress[i].UserID != userID {
			continue
		}
		out = append(out, s.stress[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Language returns the stored preference.
func (s *Store) Language(_ context.Context, userID int64) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lang, ok := s.languages[userID]
	return lang, ok, nil
}

// SetLanguage upserts the preference.
func (s *Store) SetLanguage(_ context.Context, userID int64, lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.languages[userID] = lang
	return nil
}
