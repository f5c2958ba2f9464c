// Package domain holds the records and shared vocabulary of the bot.
package domain

import (
	"time"

	"github.com/lib/pq"
)

// Language codes understood by the bot.
const (
	LangKazakh  = "kk"
	LangRussian = "ru"
)

// SupportedLanguages lists language codes in menu order.
var SupportedLanguages = []string{LangKazakh, LangRussian}

// IsSupportedLanguage reports whether code is one of SupportedLanguages.
func IsSupportedLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}

// MoodScale marks check-ins created by a direct numeric mood submission.
const MoodScale = "scale"

// CheckIn is a single mood observation. Records are append-only.
type CheckIn struct {
	ID        string    `db:"id"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	Mood      string    `db:"mood"`
	Cause     string    `db:"cause"`
	MoodScore *int      `db:"mood_score"`
}

// StressResult is the outcome of a completed stress test.
type StressResult struct {
	ID        string         `db:"id"`
	UserID    int64          `db:"user_id"`
	CreatedAt time.Time      `db:"created_at"`
	Score     int            `db:"score"`
	Level     string         `db:"level"`
	Details   pq.StringArray `db:"details"`
}

// Roles of a chat history turn.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one entry of the chat history window.
type Turn struct {
	Role string
	Text string
}
