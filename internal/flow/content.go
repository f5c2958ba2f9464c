package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/m3rciful/tynys/internal/stats"
	"github.com/m3rciful/tynys/internal/texts"
)

const dayLayout = "2006-01-02"

func (e *Engine) cmdStats(ctx context.Context, t *turn) error {
	sum, ok, err := e.stats.WeeklySummary(ctx, t.ev.UserID)
	if err != nil {
		return err
	}
	if !ok {
		t.sayKey(texts.StatsEmpty, MarkupNone)
		return nil
	}
	t.say(renderSummary(t.lang, sum), MarkupNone)
	return nil
}

func renderSummary(lang string, sum stats.Summary) string {
	causes := make([]string, 0, len(sum.TopCauses))
	for _, c := range sum.TopCauses {
		causes = append(causes, texts.CauseLabel(lang, c))
	}
	triggers := strings.Join(causes, ", ")
	if triggers == "" {
		triggers = texts.Get(lang, texts.TriggersEmpty)
	}

	var b strings.Builder
	b.WriteString(texts.Get(lang, texts.StatsTitle))
	fmt.Fprintf(&b, "\n\n%s %d", texts.Get(lang, texts.StatsCount), sum.Count)
	fmt.Fprintf(&b, "\n%s %.2f", texts.Get(lang, texts.StatsAverage), sum.Average)
	fmt.Fprintf(&b, "\n%s %s", texts.Get(lang, texts.StatsTriggers), triggers)
	fmt.Fprintf(&b, "\n%s %s (%.2f)", texts.Get(lang, texts.StatsBestDay), sum.BestDay.Day.Format(dayLayout), sum.BestDay.Average)
	fmt.Fprintf(&b, "\n%s %s (%.2f)", texts.Get(lang, texts.StatsWorstDay), sum.WorstDay.Day.Format(dayLayout), sum.WorstDay.Average)
	return b.String()
}

func bullets(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(item)
	}
	return b.String()
}

// cmdPanic sends the intro, the breathing steps one by one and the grounding
// exercise, pausing between messages.
func (e *Engine) cmdPanic(_ context.Context, t *turn) error {
	t.sayKey(texts.PanicIntro, MarkupNone)
	for _, step := range texts.List(t.lang, texts.PanicBreathingSteps) {
		t.paced(step, e.pace)
	}
	t.paced(texts.Get(t.lang, texts.GroundingIntro)+"\n"+bullets(texts.List(t.lang, texts.GroundingSteps)), e.pace)
	return nil
}

func (e *Engine) cmdBreath(_ context.Context, t *turn) error {
	t.sayKey(texts.BreathIntro, MarkupNone)
	for _, step := range texts.List(t.lang, texts.BreathSteps) {
		t.paced(step, e.pace)
	}
	return nil
}

func (e *Engine) cmdGrounding(_ context.Context, t *turn) error {
	t.say(texts.Get(t.lang, texts.GroundingIntro)+"\n"+bullets(texts.List(t.lang, texts.GroundingSteps)), MarkupNone)
	return nil
}

func (e *Engine) listCommand(intro texts.Key, list texts.ListKey) handler {
	return func(_ context.Context, t *turn) error {
		t.say(texts.Get(t.lang, intro)+"\n"+bullets(texts.List(t.lang, list)), MarkupNone)
		return nil
	}
}

func (e *Engine) cmdSafety(_ context.Context, t *turn) error {
	t.sayKey(texts.Safety, MarkupNone)
	return nil
}

func (e *Engine) cmdQuote(_ context.Context, t *turn) error {
	t.say(texts.Quote(t.lang), MarkupNone)
	return nil
}
