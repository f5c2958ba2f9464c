package router

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/m3rciful/tynys/core/logger"
	tghelpers "github.com/m3rciful/tynys/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// run invokes h as the named handler and logs one handler.handled line with
// its outcome, duration and the number of replies it queued. A nil h is
// logged as skipped.
func run(c tele.Context, name string, h tele.HandlerFunc, extras ...slog.Attr) error {
	start := time.Now()
	ctx := tghelpers.WithHandler(c, name)

	status := "skip"
	var err error
	if h != nil {
		status = "ok"
		if err = h(c); err != nil {
			status = "fail"
		}
	}

	replies, kb := tghelpers.Counters(c)
	attrs := append([]slog.Attr{
		slog.String("status", status),
		slog.Int("messages", replies),
		slog.Bool("kb", kb),
		slog.Duration("duration", time.Since(start)),
	}, extras...)
	if err != nil {
		attrs = append(attrs,
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
			slog.String("err_code", errorCode(err)),
		)
	}
	logger.LogEvent(ctx, nil, slog.LevelInfo, "handler.handled", attrs...)
	return err
}

func handlerName(name string) string {
	name = strings.TrimPrefix(strings.TrimSpace(name), "/")
	if name == "" {
		return "unknown"
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// errorCode names the error's concrete type, e.g. "*net.OpError" -> "OPERROR".
func errorCode(err error) string {
	name := fmt.Sprintf("%T", err)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToUpper(strings.TrimLeft(name, "*"))
}
