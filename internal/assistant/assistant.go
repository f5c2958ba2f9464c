// Package assistant bridges conversations to an OpenAI-compatible chat
// completion service.
package assistant

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/m3rciful/tynys/core/logger"
	"github.com/m3rciful/tynys/internal/domain"
)

// Completer is the subset of the chat completion service used by the bridge.
type Completer interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// Options configures a Bridge.
type Options struct {
	Model        string
	Temperature  float64
	MaxTokens    int64
	Timeout      time.Duration
	SystemPrompt string
}

// Request is one generation call.
type Request struct {
	Instructions string
	History      []domain.Turn
	Message      string
	Fallback     string
}

// Bridge sends requests to the completion service.
type Bridge struct {
	chat Completer
	opts Options
}

// NewClient builds an OpenAI client. baseURL may point to any
// OpenAI-compatible endpoint.
func NewClient(apiKey, baseURL string, maxRetries int) openai.Client {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(maxRetries),
	}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	return openai.NewClient(reqOpts...)
}

// New returns a bridge over chat, typically &client.Chat.Completions.
func New(chat Completer, opts Options) *Bridge {
	return &Bridge{chat: chat, opts: opts}
}

// Reply returns the generated text, or req.Fallback when the call fails or
// yields nothing. It never returns an error.
func (b *Bridge) Reply(ctx context.Context, req Request) string {
	start := time.Now()
	if b.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.opts.Timeout)
		defer cancel()
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(b.opts.Model),
		Messages: buildMessages(req),
	}
	if b.opts.Temperature > 0 {
		params.Temperature = openai.Float(b.opts.Temperature)
	}
	if b.opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(b.opts.MaxTokens)
	}

	resp, err := b.chat.New(ctx, params)
	if err != nil {
		logger.Warn(ctx, "assistant", "assistant.reply",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
			slog.Duration("duration", logger.Took(start)),
		)
		return req.Fallback
	}
	if resp == nil || len(resp.Choices) == 0 {
		logger.Warn(ctx, "assistant", "assistant.reply",
			slog.String("status", "fail"),
			slog.String("err", "no choices"),
		)
		return req.Fallback
	}
	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		logger.Warn(ctx, "assistant", "assistant.reply",
			slog.String("status", "fail"),
			slog.String("err", "empty content"),
		)
		return req.Fallback
	}
	logger.Debug(ctx, "assistant", "assistant.reply",
		slog.String("status", "ok"),
		slog.Int("history", len(req.History)),
		slog.Duration("duration", logger.Took(start)),
	)
	return text
}

func buildMessages(req Request) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+2)
	if req.Instructions != "" {
		messages = append(messages, openai.SystemMessage(req.Instructions))
	}
	for _, turn := range req.History {
		switch turn.Role {
		case domain.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Text))
		default:
			messages = append(messages, openai.UserMessage(turn.Text))
		}
	}
	return append(messages, openai.UserMessage(req.Message))
}

// Instructions returns the system prompt for lang, with the coaching
// instruction appended when coach is set.
func (b *Bridge) Instructions(lang string, coach *Coach) string {
	base := b.opts.SystemPrompt
	if base == "" {
		base = SystemPrompt(lang)
	}
	if coach == nil {
		return base
	}
	return base + "\n\n" + coach.Instruction(lang)
}
