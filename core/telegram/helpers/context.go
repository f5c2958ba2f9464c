// Package helpers bridges telebot contexts to the logger and the outbound
// dispatcher.
package helpers

import (
	"context"

	"github.com/m3rciful/tynys/core/logger"

	tele "gopkg.in/telebot.v4"
)

const contextKey = "logger_ctx"

// ContextFrom returns the context attached to the update, if any.
func ContextFrom(c tele.Context) (context.Context, bool) {
	if c == nil {
		return nil, false
	}
	ctx, ok := c.Get(contextKey).(context.Context)
	return ctx, ok
}

// BuildContext returns the update's logging context, creating and caching
// it on first use. The context carries the rid (update:chat:user) and the
// update identifiers.
func BuildContext(c tele.Context) context.Context {
	if ctx, ok := ContextFrom(c); ok {
		return ctx
	}

	var userID, chatID int64
	if user := c.Sender(); user != nil {
		userID = user.ID
	}
	if chat := c.Chat(); chat != nil {
		chatID = chat.ID
	}
	updateID := c.Update().ID

	ctx := logger.WithRID(context.Background(), logger.BuildRID(updateID, chatID, userID))
	ctx = logger.WithUpdateMeta(ctx, updateID, userID, chatID)
	ctx = logger.WithLogger(ctx, logger.Component("tg"))
	c.Set(contextKey, ctx)
	return ctx
}

// WithHandler records the handler name on the update's context.
func WithHandler(c tele.Context, handler string) context.Context {
	ctx := logger.WithHandler(BuildContext(c), handler)
	c.Set(contextKey, ctx)
	return ctx
}
