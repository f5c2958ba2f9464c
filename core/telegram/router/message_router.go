package router

import (
	tg "github.com/m3rciful/tynys/core/telegram"
	"github.com/m3rciful/tynys/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// TextOptions controls fallback behaviour for text and non-text updates.
type TextOptions struct {
	// UnknownCommand handles "/something" that is not registered.
	UnknownCommand tele.HandlerFunc
	// UnknownText runs when the registry has no text fallback.
	UnknownText tele.HandlerFunc
	// UnknownMedia handles documents, photos, stickers and voice messages.
	UnknownMedia tele.HandlerFunc
}

// TextRoutes builds handlers for plain text and media routing.
func TextRoutes(reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		text := c.Text()
		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil && !cmd.AdminOnly {
				return run(c, handlerName(key), cmd.Handler)
			}
		}
		if len(text) > 1 && text[0] == '/' && opts.UnknownCommand != nil {
			return run(c, "unknown_command", opts.UnknownCommand)
		}
		if reg != nil {
			if fb := reg.TextFallback(); fb != nil {
				return run(c, "text", fb)
			}
		}
		return run(c, "unknown_text", opts.UnknownText)
	}

	mediaHandler := func(c tele.Context) error {
		return run(c, "unexpected_media", opts.UnknownMedia)
	}

	wrap := func(h tele.HandlerFunc) tele.HandlerFunc {
		return middleware.RecoverMiddleware(middleware.LoggerMiddleware(h))
	}

	routes := []tg.Route{{Endpoint: tele.OnText, Handler: wrap(handler)}}
	for _, endpoint := range []string{tele.OnDocument, tele.OnPhoto, tele.OnSticker, tele.OnVoice} {
		routes = append(routes, tg.Route{Endpoint: endpoint, Handler: wrap(mediaHandler)})
	}
	return routes
}
