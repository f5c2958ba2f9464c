package flow

import "github.com/m3rciful/tynys/internal/domain"

// Mode tags which flow a user is in.
type Mode string

// Conversation modes.
const (
	ModeIdle           Mode = "idle"
	ModeCheckinMood    Mode = "checkin_mood"
	ModeCheckinCause   Mode = "checkin_cause"
	ModeQuiz           Mode = "quiz"
	ModeStressQuestion Mode = "stress_question"
	ModeChat           Mode = "chat"
)

// Conversation is the in-memory state of one user. Only the fields of the
// current mode are meaningful.
type Conversation struct {
	Mode     Mode
	Language string

	Mood string

	QuizKey string
	Index   int
	Score   int
	Details []string

	History []domain.Turn
}

// Clone returns a deep copy.
func (c Conversation) Clone() Conversation {
	c.Details = append([]string(nil), c.Details...)
	c.History = append([]domain.Turn(nil), c.History...)
	return c
}

// reset switches to mode and drops every transient field except the cached
// language.
func (c *Conversation) reset(mode Mode) {
	*c = Conversation{Mode: mode, Language: c.Language}
}
