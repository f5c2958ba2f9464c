// Package cmd runs a configured Telegram application until SIGINT or SIGTERM.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	coreconfig "github.com/m3rciful/tynys/core/config"
	"github.com/m3rciful/tynys/core/logger"
	coretelegram "github.com/m3rciful/tynys/core/telegram"
)

// ConfigCarrier exposes access to the embedded core configuration.
type ConfigCarrier interface {
	CoreConfig() *coreconfig.Config
}

// TelegramApp is the minimal interface required to run a Telegram bot.
type TelegramApp interface {
	TelegramRunOptions() (coretelegram.RunOptions, error)
}

// Options describe how to load configuration, bootstrap the app, and run the bot.
type Options struct {
	// ConfigEnvVar names the variable holding the config path; CONFIG_PATH by default.
	ConfigEnvVar      string
	DefaultConfigPath string

	LoadConfig func(path string) (ConfigCarrier, error)
	Bootstrap  func(ctx context.Context, cfg ConfigCarrier) (TelegramApp, error)

	// RunTelegram replaces the Telegram runtime in tests.
	RunTelegram func(ctx context.Context, opts coretelegram.RunOptions) error
}

func (o Options) configPath() (string, error) {
	env := o.ConfigEnvVar
	if env == "" {
		env = "CONFIG_PATH"
	}
	if p := os.Getenv(env); p != "" {
		return p, nil
	}
	if o.DefaultConfigPath != "" {
		return o.DefaultConfigPath, nil
	}
	return "", fmt.Errorf("cmd: config path not provided via %s or DefaultConfigPath", env)
}

// Run loads configuration, bootstraps the Telegram app, and starts the bot runtime.
func Run(opts Options) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return run(ctx, opts)
}

func run(ctx context.Context, opts Options) (err error) {
	if opts.LoadConfig == nil || opts.Bootstrap == nil {
		return errors.New("cmd: LoadConfig and Bootstrap are required")
	}
	path, err := opts.configPath()
	if err != nil {
		return err
	}

	log.Printf("loading config: %s", path)
	cfg, err := opts.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("cmd: failed to load config: %w", err)
	}
	if cfg.CoreConfig() == nil {
		return errors.New("cmd: loaded config is missing core configuration")
	}
	defer func() {
		if shutdownErr := logger.Shutdown(); shutdownErr != nil {
			log.Printf("logger shutdown error: %v", shutdownErr)
		}
	}()

	startedAt := time.Now()
	application, err := opts.Bootstrap(ctx, cfg)
	if err != nil {
		return fmt.Errorf("cmd: bootstrap failed: %w", err)
	}
	if closer, ok := application.(io.Closer); ok {
		defer func() {
			err = errors.Join(err, closer.Close())
		}()
	}

	runOpts, err := application.TelegramRunOptions()
	if err != nil {
		return fmt.Errorf("cmd: telegram options build failed: %w", err)
	}
	runOpts.OnStart = chain(runOpts.OnStart, func(ctx context.Context, rt coretelegram.Runtime) error {
		logger.Info(ctx, "app", "ready",
			slog.String("mode", rt.RunMode),
			slog.Int("commands", len(rt.Registry.Commands())),
			slog.Duration("startup_duration", time.Since(startedAt)),
		)
		return nil
	})
	runOpts.OnStop = chain(func(ctx context.Context, rt coretelegram.Runtime) error {
		logger.Info(ctx, "app", "shutdown",
			slog.Uint64("sent", rt.Dispatcher.SentCount()),
			slog.Uint64("send_errors", rt.Dispatcher.ErrorCount()),
		)
		return nil
	}, runOpts.OnStop)

	runTelegram := opts.RunTelegram
	if runTelegram == nil {
		runTelegram = coretelegram.RunTelegram
	}
	return runTelegram(ctx, runOpts)
}

type hook = func(context.Context, coretelegram.Runtime) error

// chain runs the hooks in order and stops at the first error.
func chain(hooks ...hook) hook {
	return func(ctx context.Context, rt coretelegram.Runtime) error {
		for _, h := range hooks {
			if h == nil {
				continue
			}
			if err := h(ctx, rt); err != nil {
				return err
			}
		}
		return nil
	}
}
