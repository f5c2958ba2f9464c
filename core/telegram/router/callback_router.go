package router

import (
	"log/slog"

	tg "github.com/m3rciful/tynys/core/telegram"
	"github.com/m3rciful/tynys/core/telegram/callbacks"
	"github.com/m3rciful/tynys/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// CallbackOptions customises fallback behaviour for callbacks.
type CallbackOptions struct {
	NotFound tele.HandlerFunc
}

// CallbackRoute returns a handler that routes callbacks by namespace through
// the registry. Every callback is answered before its handler runs so the
// client spinner stops even when the handler only sends messages.
func CallbackRoute(reg *tg.Registry, opts CallbackOptions) tg.Route {
	handler := func(c tele.Context) error {
		if c.Callback() == nil {
			return nil
		}
		ns, value := callbacks.ParseCallback(c.Callback())
		extras := []slog.Attr{slog.String("cb_key", ns), slog.String("cb_value", value)}

		_ = c.Respond()

		h, ok := reg.GetCallback(ns)
		if !ok || h == nil {
			if h = reg.CallbackNotFound(); h == nil {
				h = opts.NotFound
			}
			extras = append(extras, slog.String("reason", "not_found"))
		}
		return run(c, "callback."+handlerName(ns), h, extras...)
	}
	return tg.Route{
		Endpoint: tele.OnCallback,
		Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
	}
}
