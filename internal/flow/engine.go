// Package flow implements the conversation state machine of the bot. Inbound
// events are dispatched through explicit tables keyed by command, by
// (mode, callback namespace) and by mode for free text. Handlers work on a
// copy of the user's conversation that is committed only when they succeed.
package flow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/m3rciful/tynys/core/logger"
	"github.com/m3rciful/tynys/core/telegram/state"
	"github.com/m3rciful/tynys/internal/assistant"
	"github.com/m3rciful/tynys/internal/domain"
	"github.com/m3rciful/tynys/internal/language"
	"github.com/m3rciful/tynys/internal/stats"
	"github.com/m3rciful/tynys/internal/texts"
)

// saveError marks a failed write so the user is told their input was not kept.
type saveError struct {
	what string
	err  error
}

func (e *saveError) Error() string { return "save " + e.what + ": " + e.err.Error() }

func (e *saveError) Unwrap() error { return e.err }

// Store persists records produced by the flows.
type Store interface {
	language.Store
	stats.Source
	SaveCheckIn(ctx context.Context, c *domain.CheckIn) error
	SaveStressResult(ctx context.Context, r *domain.StressResult) error
	StressResults(ctx context.Context, userID int64, limit int) ([]domain.StressResult, error)
}

// Assistant generates conversational replies.
type Assistant interface {
	Reply(ctx context.Context, req assistant.Request) string
	Instructions(lang string, coach *assistant.Coach) string
}

// Deliver sends a response while the user's lock is still held, so replies
// of consecutive updates never interleave.
type Deliver func(ctx context.Context, resp Response)

// Options configures an Engine.
type Options struct {
	Store     Store
	Languages *language.Resolver
	Stats     *stats.Aggregator
	Assistant Assistant
	// Pace is the delay between messages of scripted sequences.
	Pace time.Duration
}

type handler func(ctx context.Context, t *turn) error

type callbackKey struct {
	mode      Mode
	namespace string
}

// Engine routes events to flows.
type Engine struct {
	store     Store
	languages *language.Resolver
	stats     *stats.Aggregator
	assistant Assistant
	pace      time.Duration
	sessions  *state.Manager[Conversation]

	commands  map[string]handler
	callbacks map[callbackKey]handler
	global    map[string]handler
	texts     map[Mode]handler
	actions   map[texts.Action]handler
}

// New builds an engine and its dispatch tables.
func New(opts Options) *Engine {
	e := &Engine{
		store:     opts.Store,
		languages: opts.Languages,
		stats:     opts.Stats,
		assistant: opts.Assistant,
		pace:      opts.Pace,
		sessions:  state.NewManager[Conversation](),
	}

	e.commands = map[string]handler{
		"start":          e.cmdStart,
		"menu":           e.cmdMenu,
		"checkin":        e.startCheckin,
		"language":       e.cmdLanguage,
		"chat":           e.startChat,
		"quiz":           e.cmdQuiz,
		"stress_test":    e.startStress,
		"stress_history": e.cmdStressHistory,
		"stats":          e.cmdStats,
		"mood":           e.cmdMood,
		"panic":          e.cmdPanic,
		"breath":         e.cmdBreath,
		"grounding":      e.cmdGrounding,
		"selfcare":       e.listCommand(texts.SelfcareIntro, texts.SelfcareTasks),
		"journal":        e.listCommand(texts.JournalIntro, texts.JournalQuestions),
		"faq":            e.listCommand(texts.FAQIntro, texts.FAQItems),
		"safety":         e.cmdSafety,
		"quote":          e.cmdQuote,
	}
	for _, c := range assistant.Coaches {
		e.commands[c.Command] = e.coachCommand(c)
	}

	e.callbacks = map[callbackKey]handler{
		{ModeCheckinMood, NamespaceMood}:      e.onMood,
		{ModeCheckinCause, NamespaceCause}:    e.onCause,
		{ModeStressQuestion, NamespaceStress}: e.onStressAnswer,
		{ModeQuiz, NamespaceQuizAnswer}:       e.onQuizAnswer,
	}
	e.global = map[string]handler{
		NamespaceLanguage: e.onLanguage,
		NamespaceMenu:     e.cmdMenu,
	}

	e.texts = map[Mode]handler{
		ModeIdle:           e.textIdle,
		ModeCheckinMood:    e.textCheckin,
		ModeCheckinCause:   e.textCheckin,
		ModeQuiz:           e.textQuiz,
		ModeStressQuestion: e.textStress,
		ModeChat:           e.textChat,
	}

	e.actions = map[texts.Action]handler{
		texts.ActionCheckin:    e.startCheckin,
		texts.ActionStats:      e.cmdStats,
		texts.ActionStressTest: e.startStress,
		texts.ActionPanic:      e.cmdPanic,
		texts.ActionBreath:     e.cmdBreath,
		texts.ActionChat:       e.startChat,
		texts.ActionQuote:      e.cmdQuote,
		texts.ActionLanguage:   e.cmdLanguage,
	}
	return e
}

// Commands lists the command names the engine handles.
func (e *Engine) Commands() []string {
	out := make([]string, 0, len(e.commands))
	for name := range e.commands {
		out = append(out, name)
	}
	return out
}

// Sessions reports how many users have a conversation in memory.
func (e *Engine) Sessions() int {
	return e.sessions.Count()
}

// Conversation returns a copy of the user's conversation.
func (e *Engine) Conversation(userID int64) Conversation {
	c, ok := e.sessions.Get(userID)
	if !ok {
		return Conversation{Mode: ModeIdle}
	}
	return c.Clone()
}

// turn is the working set of one event.
type turn struct {
	ev      Event
	conv    Conversation
	lang    string
	replies []Reply
}

func (t *turn) say(text string, markup Markup) {
	t.replies = append(t.replies, Reply{Text: text, Markup: markup})
}

func (t *turn) sayKey(key texts.Key, markup Markup) {
	t.say(texts.Get(t.lang, key), markup)
}

func (t *turn) paced(text string, pause time.Duration) {
	t.replies = append(t.replies, Reply{Text: text, Pause: pause})
}

// Handle processes one event under the user's lock. The conversation is
// committed only when the handler succeeds; on failure the user gets a
// retry-later message and the previous state is kept. deliver, when set, is
// called before the lock is released.
func (e *Engine) Handle(ctx context.Context, ev Event, deliver Deliver) Response {
	unlock := e.sessions.Lock(ev.UserID)
	defer unlock()

	prev, ok := e.sessions.Get(ev.UserID)
	if !ok {
		prev = Conversation{Mode: ModeIdle}
	}
	ctx = logger.WithFlowMode(ctx, string(prev.Mode))
	t := &turn{ev: ev, conv: prev.Clone()}
	t.lang = e.languages.Resolve(ctx, ev.UserID, &t.conv.Language)
	resolved := t.conv.Language

	if err := e.dispatch(ctx, t); err != nil {
		logger.Error(ctx, "flow", "flow.handle",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
		prev.Language = resolved
		e.sessions.Put(ev.UserID, prev)
		t.replies = nil
		key := texts.RetryLater
		var se *saveError
		if errors.As(err, &se) {
			key = texts.SaveFailed
		}
		t.sayKey(key, MarkupNone)
	} else {
		e.sessions.Put(ev.UserID, t.conv)
	}

	resp := Response{Language: t.lang, Replies: t.replies}
	if deliver != nil && len(resp.Replies) > 0 {
		deliver(ctx, resp)
	}
	return resp
}

func (e *Engine) dispatch(ctx context.Context, t *turn) error {
	switch t.ev.Kind {
	case KindCommand:
		h, ok := e.commands[t.ev.Command]
		if !ok {
			t.sayKey(texts.UnknownCommand, MarkupNone)
			return nil
		}
		return h(ctx, t)
	case KindCallback:
		if h, ok := e.global[t.ev.Namespace]; ok {
			return h(ctx, t)
		}
		if h, ok := e.callbacks[callbackKey{t.conv.Mode, t.ev.Namespace}]; ok {
			return h(ctx, t)
		}
		t.sayKey(texts.StepOver, MarkupMainMenu)
		return nil
	case KindText:
		if action, ok := texts.MenuAction(t.ev.Text); ok {
			return e.onAction(ctx, t, action)
		}
		h, ok := e.texts[t.conv.Mode]
		if !ok {
			h = e.textIdle
		}
		return h(ctx, t)
	case KindMedia:
		t.sayKey(texts.UnknownMedia, MarkupNone)
		return nil
	}
	return nil
}

func (e *Engine) onAction(ctx context.Context, t *turn, action texts.Action) error {
	if key, ok := action.QuizKey(); ok {
		return e.startQuiz(ctx, t, key)
	}
	if h, ok := e.actions[action]; ok {
		return h(ctx, t)
	}
	return e.textIdle(ctx, t)
}

func (e *Engine) cmdStart(_ context.Context, t *turn) error {
	t.conv.reset(ModeIdle)
	t.sayKey(texts.StartPrompt, MarkupMainMenu)
	return nil
}

func (e *Engine) cmdMenu(_ context.Context, t *turn) error {
	if t.conv.Mode == ModeChat {
		t.sayKey(texts.ChatStopped, MarkupNone)
	}
	t.conv.reset(ModeIdle)
	t.sayKey(texts.Greeting, MarkupMainMenu)
	return nil
}

func (e *Engine) textIdle(_ context.Context, t *turn) error {
	t.sayKey(texts.ChooseOption, MarkupMainMenu)
	return nil
}

func (e *Engine) cmdLanguage(_ context.Context, t *turn) error {
	t.sayKey(texts.LanguagePrompt, MarkupLanguage)
	return nil
}

func (e *Engine) onLanguage(ctx context.Context, t *turn) error {
	lang, err := e.languages.Update(ctx, t.ev.UserID, t.ev.Value, &t.conv.Language)
	if err != nil {
		return &saveError{what: "language", err: err}
	}
	t.lang = lang
	t.say(texts.Format(lang, texts.LanguageUpdated, texts.LanguageLabel(lang)), MarkupMainMenu)
	return nil
}
