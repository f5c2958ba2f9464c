// Package bot adapts the conversation engine to Telegram: it registers
// commands and callback namespaces, converts updates into flow events and
// renders replies.
package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/m3rciful/tynys/core/buildinfo"
	"github.com/m3rciful/tynys/core/logger"
	tg "github.com/m3rciful/tynys/core/telegram"
	"github.com/m3rciful/tynys/core/telegram/callbacks"
	"github.com/m3rciful/tynys/core/telegram/commands"
	tghelpers "github.com/m3rciful/tynys/core/telegram/helpers"
	"github.com/m3rciful/tynys/core/telegram/router"
	"github.com/m3rciful/tynys/core/telegram/sender"
	"github.com/m3rciful/tynys/internal/config"
	"github.com/m3rciful/tynys/internal/flow"
	"github.com/m3rciful/tynys/internal/texts"

	tele "gopkg.in/telebot.v4"
)

// App is the Telegram application.
type App struct {
	cfg        *config.Config
	engine     *flow.Engine
	closer     io.Closer
	dispatcher *sender.Dispatcher
	base       context.Context
}

// New returns an app driving engine. closer, when set, is closed on
// shutdown (the database handle).
func New(cfg *config.Config, engine *flow.Engine, closer io.Closer) *App {
	return &App{
		cfg:        cfg,
		engine:     engine,
		closer:     closer,
		dispatcher: sender.NewDispatcher(sender.Options{MaxRetries: 2}),
		base:       context.Background(),
	}
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// TelegramRunOptions wires the registry, routes and middlewares.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	reg, err := a.Registry()
	if err != nil {
		return tg.RunOptions{}, err
	}

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID:       a.cfg.Core.Telegram.AdminID,
		OnAdminReject: a.onAdminReject,
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.TextRoutes(reg, router.TextOptions{
		UnknownCommand: a.onUnknownCommand,
		UnknownMedia:   a.onMedia,
	})...)

	return tg.RunOptions{
		Config:      &a.cfg.Core,
		Registry:    reg,
		Dispatcher:  a.dispatcher,
		Middlewares: tg.DefaultMiddlewares(&a.cfg.Core, a.onRateLimited),
		Routes:      routes,
		OnStart: func(ctx context.Context, _ tg.Runtime) error {
			a.base = ctx
			return nil
		},
	}, nil
}

// Registry builds the command and callback registry.
func (a *App) Registry() (*tg.Registry, error) {
	reg := tg.NewRegistry()
	var errs []error

	for _, name := range a.engine.Commands() {
		desc, ok := commandDescriptions[name]
		if !ok {
			errs = append(errs, fmt.Errorf("command /%s has no description", name))
			continue
		}
		errs = append(errs, reg.RegisterCommand("/"+name, commands.Command{
			Handler:     a.command(name),
			Description: desc,
			Aliases:     commandAliases[name],
		}))
	}
	if a.cfg.Core.Telegram.AdminID != 0 {
		errs = append(errs, reg.RegisterCommand(statusCommand, commands.Command{
			Handler:     a.onStatus,
			Description: "Bot status",
			AdminOnly:   true,
			Hidden:      true,
		}))
	}

	for _, ns := range []string{
		flow.NamespaceMood,
		flow.NamespaceCause,
		flow.NamespaceStress,
		flow.NamespaceQuizAnswer,
		flow.NamespaceLanguage,
		flow.NamespaceMenu,
	} {
		errs = append(errs, reg.RegisterCallback(ns, a.onCallback))
	}
	reg.SetCallbackNotFound(a.onCallback)
	reg.SetTextFallback(a.onText)

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("bot: registry: %w", err)
	}
	return reg, nil
}

func commandArgs(text string) string {
	_, args, _ := strings.Cut(strings.TrimSpace(text), " ")
	return strings.TrimSpace(args)
}

func (a *App) command(name string) tele.HandlerFunc {
	return func(c tele.Context) error {
		return a.handle(c, flow.Event{Kind: flow.KindCommand, Command: name, Args: commandArgs(c.Text())})
	}
}

func (a *App) onUnknownCommand(c tele.Context) error {
	name, _, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(c.Text()), "/"), " ")
	name, _, _ = strings.Cut(name, "@")
	return a.handle(c, flow.Event{Kind: flow.KindCommand, Command: name, Args: commandArgs(c.Text())})
}

func (a *App) onCallback(c tele.Context) error {
	ns, value := callbacks.ParseCallback(c.Callback())
	return a.handle(c, flow.Event{Kind: flow.KindCallback, Namespace: ns, Value: value})
}

func (a *App) onText(c tele.Context) error {
	return a.handle(c, flow.Event{Kind: flow.KindText, Text: c.Text()})
}

func (a *App) onMedia(c tele.Context) error {
	return a.handle(c, flow.Event{Kind: flow.KindMedia})
}

// handle runs ev through the engine. Replies are sent while the user's lock
// is held; pauses stop early when the bot shuts down.
func (a *App) handle(c tele.Context, ev flow.Event) error {
	user := c.Sender()
	if user == nil {
		return nil
	}
	ev.UserID = user.ID
	if chat := c.Chat(); chat != nil {
		ev.ChatID = chat.ID
	}

	ctx, cancel := context.WithCancel(tghelpers.BuildContext(c))
	defer cancel()
	stop := context.AfterFunc(a.base, cancel)
	defer stop()

	if a.wantsTyping(ev) {
		_ = c.Notify(tele.Typing)
	}

	var sendErr error
	a.engine.Handle(ctx, ev, func(ctx context.Context, resp flow.Response) {
		sendErr = a.deliver(ctx, c, resp)
	})
	return sendErr
}

func (a *App) wantsTyping(ev flow.Event) bool {
	if a.engine.Conversation(ev.UserID).Mode != flow.ModeChat {
		return false
	}
	switch ev.Kind {
	case flow.KindText:
		_, isMenu := texts.MenuAction(ev.Text)
		return !isMenu
	case flow.KindCommand:
		_, ok := coachCommands[ev.Command]
		return ok && ev.Args != ""
	}
	return false
}

func (a *App) deliver(ctx context.Context, c tele.Context, resp flow.Response) error {
	for _, r := range resp.Replies {
		if r.Pause > 0 {
			t := time.NewTimer(r.Pause)
			select {
			case <-ctx.Done():
				t.Stop()
				logger.Debug(ctx, "tg", "deliver.cancelled", slog.String("reason", ctx.Err().Error()))
				return nil
			case <-t.C:
			}
		}
		if strings.TrimSpace(r.Text) == "" {
			continue
		}
		var opts *tele.SendOptions
		if m := Markup(resp.Language, r.Markup); m != nil {
			opts = &tele.SendOptions{ReplyMarkup: m}
		}
		if err := tghelpers.SendText(c, r.Text, opts); err != nil {
			return err
		}
	}
	return nil
}

// languageOf is the cached language of a user, for replies produced outside
// the engine.
func (a *App) languageOf(c tele.Context) string {
	if c.Sender() == nil {
		return a.cfg.Bot.DefaultLanguage
	}
	if lang := a.engine.Conversation(c.Sender().ID).Language; lang != "" {
		return lang
	}
	return a.cfg.Bot.DefaultLanguage
}

func (a *App) onRateLimited(c tele.Context) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: texts.Get(a.languageOf(c), texts.RateLimited)})
	}
	return tghelpers.SendText(c, texts.Get(a.languageOf(c), texts.RateLimited))
}

func (a *App) onAdminReject(c tele.Context) error {
	return tghelpers.SendText(c, texts.Get(a.languageOf(c), texts.AdminOnly))
}

func (a *App) onStatus(c tele.Context) error {
	text := fmt.Sprintf("version: %s\nsessions: %d\nsent: %d\nsend errors: %d",
		buildinfo.String(),
		a.engine.Sessions(),
		a.dispatcher.SentCount(),
		a.dispatcher.ErrorCount(),
	)
	return tghelpers.SendText(c, text)
}
