package flow

import (
	"context"
	"strings"

	"github.com/m3rciful/tynys/internal/assistant"
	"github.com/m3rciful/tynys/internal/domain"
	"github.com/m3rciful/tynys/internal/texts"
)

func (e *Engine) startChat(_ context.Context, t *turn) error {
	t.conv.reset(ModeChat)
	t.sayKey(texts.ChatStarted, MarkupBackToMenu)
	return nil
}

// textChat answers free text in chat mode and slides the history window.
func (e *Engine) textChat(ctx context.Context, t *turn) error {
	msg := strings.TrimSpace(t.ev.Text)
	if msg == "" {
		return nil
	}
	reply := e.assistant.Reply(ctx, assistant.Request{
		Instructions: e.assistant.Instructions(t.lang, nil),
		History:      t.conv.History,
		Message:      msg,
		Fallback:     texts.Get(t.lang, texts.ChatFallback),
	})
	t.conv.History = assistant.AppendHistory(t.conv.History,
		domain.Turn{Role: domain.RoleUser, Text: msg},
		domain.Turn{Role: domain.RoleAssistant, Text: reply},
	)
	t.say(reply, MarkupNone)
	return nil
}

// coachCommand answers a one-shot coaching prompt. It needs chat mode but
// sends no history and leaves the window untouched.
func (e *Engine) coachCommand(coach *assistant.Coach) handler {
	return func(ctx context.Context, t *turn) error {
		if t.conv.Mode != ModeChat {
			t.sayKey(texts.ChatRequired, MarkupMainMenu)
			return nil
		}
		msg := strings.TrimSpace(t.ev.Args)
		if msg == "" {
			t.say(coach.Usage(t.lang), MarkupNone)
			return nil
		}
		reply := e.assistant.Reply(ctx, assistant.Request{
			Instructions: e.assistant.Instructions(t.lang, coach),
			Message:      msg,
			Fallback:     texts.Get(t.lang, texts.ChatFallback),
		})
		t.say(reply, MarkupNone)
		return nil
	}
}
