package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/m3rciful/tynys/internal/quiz"
	"github.com/m3rciful/tynys/internal/texts"
)

const answerYes = "yes"

func questionText(index, total int, question string) string {
	return fmt.Sprintf("%d/%d. %s", index+1, total, question)
}

func (e *Engine) cmdQuiz(ctx context.Context, t *turn) error {
	key := strings.ToLower(strings.TrimSpace(t.ev.Args))
	if key == "" {
		t.sayKey(texts.QuizUsage, MarkupNone)
		return nil
	}
	if _, ok := quiz.Lookup(t.lang, key); !ok {
		t.sayKey(texts.UnknownQuiz, MarkupNone)
		t.sayKey(texts.QuizUsage, MarkupNone)
		return nil
	}
	return e.startQuiz(ctx, t, key)
}

func (e *Engine) startQuiz(_ context.Context, t *turn, key string) error {
	def, ok := quiz.Lookup(t.lang, key)
	if !ok {
		t.sayKey(texts.UnknownQuiz, MarkupNone)
		return nil
	}
	t.conv.reset(ModeQuiz)
	t.conv.QuizKey = key
	t.say(texts.Format(t.lang, texts.QuizIntro, def.Header()), MarkupNone)
	t.say(questionText(0, def.Total(), def.Questions[0]), MarkupQuizAnswer)
	return nil
}

func (e *Engine) onQuizAnswer(_ context.Context, t *turn) error {
	def, ok := quiz.Lookup(t.lang, t.conv.QuizKey)
	if !ok || t.conv.Index >= def.Total() {
		t.conv.reset(ModeIdle)
		t.sayKey(texts.StepOver, MarkupMainMenu)
		return nil
	}
	if !texts.Has(texts.Answers(t.lang), t.ev.Value) {
		t.sayKey(texts.QuizInProgress, MarkupQuizAnswer)
		return nil
	}

	if t.ev.Value == answerYes {
		t.conv.Score++
	}
	t.conv.Index++
	if t.conv.Index < def.Total() {
		t.say(questionText(t.conv.Index, def.Total(), def.Questions[t.conv.Index]), MarkupQuizAnswer)
		return nil
	}

	result, err := def.Classify(t.conv.Score)
	if err != nil {
		return fmt.Errorf("quiz %s: %w", def.Key, err)
	}
	var b strings.Builder
	b.WriteString(texts.Format(t.lang, texts.QuizCompleted, def.Header()))
	fmt.Fprintf(&b, "\n\n%s %d/%d", texts.Get(t.lang, texts.ScoreLabel), t.conv.Score, def.Total())
	fmt.Fprintf(&b, "\n%s %s", texts.Get(t.lang, texts.ResultLabel), result.Level)
	fmt.Fprintf(&b, "\n%s %s", texts.Get(t.lang, texts.AdviceLabel), result.Advice)
	t.conv.reset(ModeIdle)
	t.say(b.String(), MarkupMainMenu)
	return nil
}

func (e *Engine) textQuiz(_ context.Context, t *turn) error {
	t.sayKey(texts.QuizInProgress, MarkupQuizAnswer)
	return nil
}
