package middleware

import (
	"log/slog"
	"unicode/utf8"

	"github.com/m3rciful/tynys/core/logger"
	"github.com/m3rciful/tynys/core/telegram/callbacks"
	tghelpers "github.com/m3rciful/tynys/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// LoggerMiddleware attaches the update's correlation context and logs one
// sampled receipt line per update. It is applied both globally and per
// route; the second pass over the same update is a no-op. Message text is
// never logged, only its length.
func LoggerMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if _, seen := tghelpers.ContextFrom(c); seen {
			return next(c)
		}
		ctx := tghelpers.BuildContext(c)
		if logger.ShouldSampleDebug() {
			logger.LogEvent(ctx, nil, slog.LevelDebug, "update.received", receiptAttrs(c)...)
		}
		return next(c)
	}
}

func receiptAttrs(c tele.Context) []slog.Attr {
	attrs := []slog.Attr{slog.String("status", "ok")}
	if chat := c.Chat(); chat != nil {
		attrs = append(attrs, slog.String("chat_type", string(chat.Type)))
	}
	if user := c.Sender(); user != nil && user.LanguageCode != "" {
		attrs = append(attrs, slog.String("lang", user.LanguageCode))
	}
	switch {
	case c.Callback() != nil:
		key, payload := callbacks.ParseCallback(c.Callback())
		attrs = append(attrs,
			slog.String("cb_key", logger.SanitizeLimit(key, 128)),
			slog.String("payload", logger.SanitizeLimit(payload, 256)),
		)
	case c.Message() != nil:
		attrs = append(attrs, slog.Int("text_len", utf8.RuneCountInString(c.Text())))
	}
	return attrs
}
