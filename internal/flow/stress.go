package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/m3rciful/tynys/internal/domain"
	"github.com/m3rciful/tynys/internal/quiz"
	"github.com/m3rciful/tynys/internal/texts"
)

// StressHistoryLimit is how many past results /stress_history shows.
const StressHistoryLimit = 5

func (e *Engine) startStress(_ context.Context, t *turn) error {
	questions := texts.List(t.lang, texts.StressQuestions)
	t.conv.reset(ModeStressQuestion)
	t.sayKey(texts.StressIntro, MarkupNone)
	t.say(questionText(0, len(questions), questions[0]), MarkupStress)
	return nil
}

func (e *Engine) onStressAnswer(ctx context.Context, t *turn) error {
	questions := texts.List(t.lang, texts.StressQuestions)
	if t.conv.Index >= len(questions) {
		t.conv.reset(ModeIdle)
		t.sayKey(texts.StepOver, MarkupMainMenu)
		return nil
	}
	answers := texts.Answers(t.lang)
	if !texts.Has(answers, t.ev.Value) {
		t.sayKey(texts.QuizInProgress, MarkupStress)
		return nil
	}

	if t.ev.Value == answerYes {
		t.conv.Score++
	}
	t.conv.Details = append(t.conv.Details, questions[t.conv.Index]+" - "+texts.Label(answers, t.ev.Value))
	t.conv.Index++
	if t.conv.Index < len(questions) {
		t.say(questionText(t.conv.Index, len(questions), questions[t.conv.Index]), MarkupStress)
		return nil
	}

	band, err := quiz.Classify(quiz.StressBands, t.conv.Score)
	if err != nil {
		return fmt.Errorf("stress test: %w", err)
	}
	r := &domain.StressResult{
		UserID:  t.ev.UserID,
		Score:   t.conv.Score,
		Level:   band.Level,
		Details: t.conv.Details,
	}
	if err := e.store.SaveStressResult(ctx, r); err != nil {
		return &saveError{what: "stress result", err: err}
	}

	text := fmt.Sprintf("%s\n\n%s %d/%d\n%s %s",
		texts.Get(t.lang, texts.StressCompleted),
		texts.Get(t.lang, texts.StressScoreLabel), r.Score, len(questions),
		texts.Get(t.lang, texts.StressLevelLabel), texts.StressLevel(t.lang, r.Level),
	)
	t.conv.reset(ModeIdle)
	t.say(text, MarkupMainMenu)
	return nil
}

func (e *Engine) textStress(_ context.Context, t *turn) error {
	t.sayKey(texts.QuizInProgress, MarkupStress)
	return nil
}

func (e *Engine) cmdStressHistory(ctx context.Context, t *turn) error {
	results, err := e.store.StressResults(ctx, t.ev.UserID, StressHistoryLimit)
	if err != nil {
		return fmt.Errorf("list stress results: %w", err)
	}
	if len(results) == 0 {
		t.sayKey(texts.StressHistoryEmpty, MarkupNone)
		return nil
	}
	var b strings.Builder
	b.WriteString(texts.Get(t.lang, texts.StressHistoryTitle))
	for _, r := range results {
		fmt.Fprintf(&b, "\n• %s: %d (%s)", r.CreatedAt.UTC().Format("2006-01-02 15:04"), r.Score, texts.StressLevel(t.lang, r.Level))
	}
	t.say(b.String(), MarkupNone)
	return nil
}
