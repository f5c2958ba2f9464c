package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/m3rciful/tynys/internal/domain"
)

type mockCompleter struct {
	reply    string
	err      error
	noChoice bool
	got      openai.ChatCompletionNewParams
	deadline bool
}

func (m *mockCompleter) New(ctx context.Context, body openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
	m.got = body
	_, m.deadline = ctx.Deadline()
	if m.err != nil {
		return nil, m.err
	}
	if m.noChoice {
		return &openai.ChatCompletion{}, nil
	}
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: m.reply}}},
	}, nil
}

func TestReplyBuildsMessages(t *testing.T) {
	mock := &mockCompleter{reply: "жауап"}
	b := New(mock, Options{Model: "test-model", Temperature: 0.5, MaxTokens: 100, Timeout: time.Second})

	got := b.Reply(context.Background(), Request{
		Instructions: "sys",
		History: []domain.Turn{
			{Role: domain.RoleUser, Text: "u1"},
			{Role: domain.RoleAssistant, Text: "a1"},
		},
		Message:  "u2",
		Fallback: "fb",
	})
	if got != "жауап" {
		t.Fatalf("Reply = %q", got)
	}
	msgs := mock.got.Messages
	if len(msgs) != 4 {
		t.Fatalf("messages = %d, want 4", len(msgs))
	}
	if msgs[0].OfSystem == nil || msgs[1].OfUser == nil || msgs[2].OfAssistant == nil || msgs[3].OfUser == nil {
		t.Fatalf("unexpected message roles: %+v", msgs)
	}
	if string(mock.got.Model) != "test-model" {
		t.Fatalf("model = %q", mock.got.Model)
	}
	if !mock.deadline {
		t.Fatal("expected a deadline on the request context")
	}
}

func TestReplyFallback(t *testing.T) {
	tests := []struct {
		name string
		mock *mockCompleter
	}{
		{"error", &mockCompleter{err: errors.New("boom")}},
		{"no choices", &mockCompleter{noChoice: true}},
		{"blank", &mockCompleter{reply: "  \n"}},
	}
	for _, tt := range tests {
		b := New(tt.mock, Options{Model: "m"})
		if got := b.Reply(context.Background(), Request{Message: "hi", Fallback: "fb"}); got != "fb" {
			t.Errorf("%s: Reply = %q, want fallback", tt.name, got)
		}
	}
}

func TestAppendHistoryWindow(t *testing.T) {
	var h []domain.Turn
	for i := 0; i < 11; i++ {
		h = AppendHistory(h,
			domain.Turn{Role: domain.RoleUser, Text: fmt.Sprintf("u%d", i)},
			domain.Turn{Role: domain.RoleAssistant, Text: fmt.Sprintf("a%d", i)},
		)
	}
	if len(h) != HistoryLimit {
		t.Fatalf("len = %d, want %d", len(h), HistoryLimit)
	}
	if h[0].Text != "u1" || h[len(h)-1].Text != "a10" {
		t.Fatalf("window = %q .. %q", h[0].Text, h[len(h)-1].Text)
	}
}

func TestAppendHistoryDoesNotAlias(t *testing.T) {
	base := make([]domain.Turn, 1, 4)
	base[0] = domain.Turn{Role: domain.RoleUser, Text: "x"}
	a := AppendHistory(base, domain.Turn{Text: "a"})
	b := AppendHistory(base, domain.Turn{Text: "b"})
	if a[1].Text != "a" || b[1].Text != "b" {
		t.Fatalf("histories share storage: %v %v", a, b)
	}
}

func TestInstructions(t *testing.T) {
	b := New(&mockCompleter{}, Options{})
	coach, ok := LookupCoach("reframe")
	if !ok {
		t.Fatal("reframe coach missing")
	}
	got := b.Instructions(domain.LangRussian, coach)
	if !strings.HasPrefix(got, SystemPrompt(domain.LangRussian)) || !strings.HasSuffix(got, coach.Instruction(domain.LangRussian)) {
		t.Fatalf("Instructions = %q", got)
	}

	custom := New(&mockCompleter{}, Options{SystemPrompt: "custom"})
	if custom.Instructions(domain.LangKazakh, nil) != "custom" {
		t.Fatal("configured system prompt ignored")
	}
	if _, ok := LookupCoach("chat"); ok {
		t.Fatal("unexpected coach")
	}
	for _, c := range Coaches {
		if c.Usage("xx") == "" || c.Instruction(domain.LangRussian) == "" {
			t.Errorf("coach %s has empty texts", c.Command)
		}
	}
}
