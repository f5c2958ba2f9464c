package flow

import "time"

// Kind is the type of an inbound event.
type Kind int

// Event kinds.
const (
	KindCommand Kind = iota + 1
	KindCallback
	KindText
	KindMedia
)

// Callback namespaces.
const (
	NamespaceMood       = "mood"
	NamespaceCause      = "cause"
	NamespaceStress     = "stress"
	NamespaceQuizAnswer = "quiz_answer"
	NamespaceLanguage   = "lang"
	NamespaceMenu       = "menu"
)

// MenuBack is the value of the back-to-menu callback.
const MenuBack = "back"

// Event is a transport-free inbound update.
type Event struct {
	UserID int64
	ChatID int64
	Kind   Kind

	// Command is the command name without slash, Args the trimmed rest.
	Command string
	Args    string

	Namespace string
	Value     string

	Text string
}

// Markup is the semantic keyboard attached to a reply.
type Markup int

// Markups.
const (
	MarkupNone Markup = iota
	MarkupMainMenu
	MarkupMood
	MarkupCause
	MarkupStress
	MarkupQuizAnswer
	MarkupLanguage
	MarkupBackToMenu
)

// Reply is one outbound message. Pause is waited before sending it.
type Reply struct {
	Text   string
	Markup Markup
	Pause  time.Duration
}

// Response is everything produced for one event.
type Response struct {
	Language string
	Replies  []Reply
}
