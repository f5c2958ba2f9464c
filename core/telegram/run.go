package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	coreconfig "github.com/m3rciful/tynys/core/config"
	"github.com/m3rciful/tynys/core/logger"
	tghelpers "github.com/m3rciful/tynys/core/telegram/helpers"
	tgsender "github.com/m3rciful/tynys/core/telegram/sender"

	tele "gopkg.in/telebot.v4"
)

const defaultLongPollTimeout = 10 * time.Second

// allowedUpdates lists the update kinds the bot subscribes to.
var allowedUpdates = []string{"message", "callback_query"}

// Middleware describes a global bot middleware to be registered via bot.Use.
type Middleware struct {
	Name string
	Use  func(next tele.HandlerFunc) tele.HandlerFunc
}

// Route declares a single bot handler bound to an arbitrary endpoint.
// Endpoint values are passed directly to tele.Bot.Handle.
type Route struct {
	Endpoint any
	Handler  tele.HandlerFunc
}

// RunOptions controls the behaviour of RunTelegram.
type RunOptions struct {
	Config   *coreconfig.Config
	Registry *Registry
	// Dispatcher sends outbound messages; a default one is created when nil.
	Dispatcher *tgsender.Dispatcher

	Middlewares []Middleware
	Routes      []Route

	OnStart func(ctx context.Context, rt Runtime) error
	OnStop  func(ctx context.Context, rt Runtime) error
}

// Runtime exposes runtime components to lifecycle hooks.
type Runtime struct {
	Bot        *tele.Bot
	Dispatcher *tgsender.Dispatcher
	Registry   *Registry
	RunMode    string
}

// BuildPoller returns the webhook or long poller selected by cfg.
func BuildPoller(cfg *coreconfig.Config) tele.Poller {
	if cfg.Telegram.RunMode == coreconfig.RunModeWebhook {
		return &tele.Webhook{
			Listen:         fmt.Sprintf("%s:%d", cfg.Webhook.Listen, cfg.Webhook.Port),
			Endpoint:       &tele.WebhookEndpoint{PublicURL: cfg.Webhook.URL},
			AllowedUpdates: allowedUpdates,
		}
	}
	timeout := defaultLongPollTimeout
	if s := cfg.Telegram.LongPollTimeoutSeconds; s > 0 {
		timeout = time.Duration(s) * time.Second
	}
	return &tele.LongPoller{Timeout: timeout, AllowedUpdates: allowedUpdates}
}

// RunTelegram composes and runs a Telegram bot until ctx is done.
func RunTelegram(ctx context.Context, opts RunOptions) error {
	if opts.Config == nil {
		return errors.New("telegram: nil config provided")
	}
	cfg := opts.Config
	rt := Runtime{Registry: opts.Registry, Dispatcher: opts.Dispatcher, RunMode: cfg.Telegram.RunMode}
	if rt.Registry == nil {
		rt.Registry = NewRegistry()
	}
	if rt.Dispatcher == nil {
		rt.Dispatcher = tgsender.NewDispatcher(tgsender.Options{})
	}
	defer rt.Dispatcher.Close()

	poller := BuildPoller(cfg)
	var pollTimeout time.Duration
	if lp, ok := poller.(*tele.LongPoller); ok {
		pollTimeout = lp.Timeout
	}
	start := time.Now()
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: poller,
		Client: BuildHTTPClient(pollTimeout),
	})
	if err != nil {
		return fmt.Errorf("telegram: bot initialization failed: %w", err)
	}
	rt.Bot = bot

	attrs := []slog.Attr{
		slog.String("mode", rt.RunMode),
		slog.String("username", bot.Me.Username),
		slog.Duration("duration", logger.Took(start)),
	}
	switch p := poller.(type) {
	case *tele.Webhook:
		attrs = append(attrs, slog.String("listen", p.Listen), slog.String("public_url", p.Endpoint.PublicURL))
	case *tele.LongPoller:
		attrs = append(attrs, slog.Duration("timeout", p.Timeout))
		// A webhook left over from a previous deployment blocks getUpdates.
		if err := bot.RemoveWebhook(); err != nil {
			logger.Warn(ctx, "tg", "webhook.remove",
				slog.String("status", "fail"),
				slog.String("err", err.Error()),
			)
		}
	}
	logger.Info(ctx, "tg", "bot.init", attrs...)

	tghelpers.SetDispatcher(rt.Dispatcher)
	defer tghelpers.SetDispatcher(nil)

	for _, mw := range opts.Middlewares {
		if mw.Use != nil {
			bot.Use(mw.Use)
		}
	}
	for _, route := range opts.Routes {
		if route.Endpoint != nil && route.Handler != nil {
			bot.Handle(route.Endpoint, route.Handler)
		}
	}
	InitBotCommands(ctx, bot, rt.Registry)

	if opts.OnStart != nil {
		if err := opts.OnStart(ctx, rt); err != nil {
			return err
		}
	}

	done := make(chan struct{})
	go func() {
		bot.Start()
		close(done)
	}()
	select {
	case <-ctx.Done():
		bot.Stop()
		<-done
	case <-done:
	}

	if opts.OnStop != nil {
		return opts.OnStop(context.WithoutCancel(ctx), rt)
	}
	return nil
}
