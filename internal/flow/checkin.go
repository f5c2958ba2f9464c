package flow

import (
	"context"
	"strconv"
	"strings"

	"github.com/m3rciful/tynys/internal/domain"
	"github.com/m3rciful/tynys/internal/texts"
)

// Mood scale bounds accepted by /mood.
const (
	MoodScoreMin = 1
	MoodScoreMax = 10
)

func (e *Engine) startCheckin(_ context.Context, t *turn) error {
	t.conv.reset(ModeCheckinMood)
	t.sayKey(texts.Greeting, MarkupMood)
	return nil
}

func (e *Engine) onMood(_ context.Context, t *turn) error {
	if !texts.Has(texts.Moods(t.lang), t.ev.Value) {
		t.sayKey(texts.ChooseOption, MarkupMood)
		return nil
	}
	t.conv.Mood = t.ev.Value
	t.conv.Mode = ModeCheckinCause
	t.sayKey(texts.CheckinPrompt, MarkupCause)
	return nil
}

func (e *Engine) onCause(ctx context.Context, t *turn) error {
	if !texts.Has(texts.Causes(t.lang), t.ev.Value) {
		t.sayKey(texts.ChooseOption, MarkupCause)
		return nil
	}
	c := &domain.CheckIn{UserID: t.ev.UserID, Mood: t.conv.Mood, Cause: t.ev.Value}
	if err := e.store.SaveCheckIn(ctx, c); err != nil {
		return &saveError{what: "checkin", err: err}
	}
	t.conv.reset(ModeIdle)
	t.sayKey(texts.CheckinThanks, MarkupMainMenu)
	return nil
}

func (e *Engine) textCheckin(_ context.Context, t *turn) error {
	if t.conv.Mode == ModeCheckinCause {
		t.sayKey(texts.ChooseOption, MarkupCause)
		return nil
	}
	t.sayKey(texts.ChooseOption, MarkupMood)
	return nil
}

// cmdMood records a direct 1..10 mood score. It does not touch the current
// flow.
func (e *Engine) cmdMood(ctx context.Context, t *turn) error {
	arg := strings.TrimSpace(t.ev.Args)
	if arg == "" {
		t.sayKey(texts.MoodUsage, MarkupNone)
		return nil
	}
	score, err := strconv.Atoi(arg)
	if err != nil {
		t.sayKey(texts.MoodInteger, MarkupNone)
		return nil
	}
	if score < MoodScoreMin || score > MoodScoreMax {
		t.sayKey(texts.MoodRange, MarkupNone)
		return nil
	}

	c := &domain.CheckIn{
		UserID:    t.ev.UserID,
		Mood:      domain.MoodScale,
		Cause:     domain.MoodScale,
		MoodScore: &score,
	}
	if err := e.store.SaveCheckIn(ctx, c); err != nil {
		return &saveError{what: "mood score", err: err}
	}
	t.say(texts.Format(t.lang, texts.MoodSaved, score), MarkupNone)
	return nil
}
