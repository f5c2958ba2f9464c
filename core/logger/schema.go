package logger

import "log/slog"

func levelName(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN"
	case l >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

// defaultKeyOrder puts correlation keys first, then the bot's domain keys.
var defaultKeyOrder = []string{
	"ts",
	"level",
	"component",
	"event",
	"status",
	"rid",
	"rid_full",
	"ts_unix_nano",
	"update_id",
	"user_id",
	"chat_id",
	"chat_type",
	"handler",
	"outcome",
	"flow_mode",
	"cb_key",
	"payload",
	"duration_ms",
	"messages",
	"kb",
	"lang",
	"quiz",
	"index",
	"score",
	"level_code",
	"mood",
	"cause",
	"count",
	"history",
	"model",
	"mode",
	"listen",
	"public_url",
	"driver",
	"db",
	"host",
	"err",
	"err_code",
	"retryable",
	"attempts",
	"backoff_ms",
}
