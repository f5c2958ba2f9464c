package router

import (
	"context"
	"log/slog"

	"github.com/m3rciful/tynys/core/logger"
	tg "github.com/m3rciful/tynys/core/telegram"
	"github.com/m3rciful/tynys/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// CommandRouteOptions configures how commands are wrapped and exposed.
type CommandRouteOptions struct {
	AdminID       int64
	OnAdminReject tele.HandlerFunc
}

// CommandRoutes prepares command handlers wrapped with shared middleware.
// Aliases get their own endpoints bound to the canonical handler.
func CommandRoutes(reg *tg.Registry, opts CommandRouteOptions) []tg.Route {
	if reg == nil {
		return nil
	}

	adminOpts := middleware.AdminOptions{
		AdminID:  opts.AdminID,
		OnReject: opts.OnAdminReject,
	}

	cmds := reg.Commands()
	routes := make([]tg.Route, 0, len(cmds))
	for name, def := range cmds {
		name, inner := handlerName(name), def.Handler
		h := func(c tele.Context) error {
			return run(c, name, inner)
		}
		if def.AdminOnly {
			h = middleware.AdminOnlyMiddleware(adminOpts)(h)
		}
		h = middleware.RecoverMiddleware(middleware.LoggerMiddleware(h))

		for _, endpoint := range def.Names(name) {
			routes = append(routes, tg.Route{Endpoint: endpoint, Handler: h})
		}
	}

	logger.Info(context.Background(), "tg.wire", "complete",
		slog.Int("commands", len(cmds)),
		slog.Int("callbacks", len(reg.ListCallbacks())),
	)

	return routes
}
