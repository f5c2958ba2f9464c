package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
)

type ctxKey struct{}

type loggerKey struct{}

// updateMeta is the per-update correlation data attached to every record
// logged with the context. It is copied on write.
type updateMeta struct {
	rid      string
	updateID int
	userID   int64
	chatID   int64
	handler  string
	flowMode string
}

func metaFrom(ctx context.Context) updateMeta {
	if ctx == nil {
		return updateMeta{}
	}
	m, _ := ctx.Value(ctxKey{}).(updateMeta)
	return m
}

func withMeta(ctx context.Context, fn func(*updateMeta)) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	m := metaFrom(ctx)
	fn(&m)
	return context.WithValue(ctx, ctxKey{}, m)
}

// WithLogger stores the provided slog.Logger in context for propagation across layers.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if log == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey{}, log)
}

// FromContext extracts slog.Logger from context or returns global default.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return L
}

// WithRID attaches request correlation id into context.
func WithRID(ctx context.Context, rid string) context.Context {
	return withMeta(ctx, func(m *updateMeta) { m.rid = rid })
}

// WithUpdateMeta attaches common update identifiers to context.
func WithUpdateMeta(ctx context.Context, updateID int, userID, chatID int64) context.Context {
	return withMeta(ctx, func(m *updateMeta) {
		m.updateID = updateID
		m.userID = userID
		m.chatID = chatID
	})
}

// WithHandler stores handler identifier in context for downstream logs.
func WithHandler(ctx context.Context, handler string) context.Context {
	if handler == "" {
		return ctx
	}
	return withMeta(ctx, func(m *updateMeta) { m.handler = handler })
}

// WithFlowMode records the conversation mode active while an update is handled.
func WithFlowMode(ctx context.Context, mode string) context.Context {
	if mode == "" {
		return ctx
	}
	return withMeta(ctx, func(m *updateMeta) { m.flowMode = mode })
}

// ChatIDFrom extracts chat id from context.
func ChatIDFrom(ctx context.Context) int64 { return metaFrom(ctx).chatID }

// fields returns the context attributes in log-key form, skipping zero values.
func (m updateMeta) fields() []field {
	var out []field
	if m.rid != "" {
		out = append(out, field{"rid", m.rid})
	}
	if m.updateID != 0 {
		out = append(out, field{"update_id", int64(m.updateID)})
	}
	if m.userID != 0 {
		out = append(out, field{"user_id", m.userID})
	}
	if m.chatID != 0 {
		out = append(out, field{"chat_id", m.chatID})
	}
	if m.handler != "" {
		out = append(out, field{"handler", m.handler})
	}
	if m.flowMode != "" {
		out = append(out, field{"flow_mode", m.flowMode})
	}
	return out
}

// SanitizeLimit drops control characters (keeping tab and newline) and cuts
// the result to max runes.
func SanitizeLimit(s string, max int) string {
	if max <= 0 {
		return ""
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n == max {
			break
		}
		if r != '\n' && r != '\t' && (unicode.IsControl(r) || unicode.Is(unicode.Cf, r)) {
			continue
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// BuildRID returns a correlation identifier in the format updateID:chatID:userID.
func BuildRID(updateID int, chatID, userID int64) string {
	return fmt.Sprintf("%d:%d:%d", updateID, chatID, userID)
}

// CompactRID shortens colon-separated RID into base36 segments for readability.
// When the input does not match the expected format it is returned unchanged.
func CompactRID(rid string) string {
	parts := strings.Split(strings.TrimSpace(rid), ":")
	if len(parts) != 3 {
		return rid
	}
	for i, part := range parts {
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return rid
		}
		parts[i] = strconv.FormatInt(n, 36)
	}
	return strings.Join(parts, ".")
}
