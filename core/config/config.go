// Package config holds the Telegram runtime settings shared by every bot
// built on core: credentials, run mode, logging and rate limiting.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// TelegramConfig holds Telegram bot settings.
type TelegramConfig struct {
	Token string `yaml:"token" envconfig:"BOT_TOKEN"`
	// AdminID enables the hidden admin commands when non-zero.
	AdminID int64  `yaml:"admin_id" envconfig:"TELEGRAM_ADMIN_ID"`
	RunMode string `yaml:"run_mode" envconfig:"TELEGRAM_RUN_MODE"`
	// LongPollTimeoutSeconds defines long polling timeout; 0 -> default
	LongPollTimeoutSeconds int `yaml:"longpoll_timeout_seconds" envconfig:"TELEGRAM_LONGPOLL_TIMEOUT_SECONDS"`
}

// WebhookConfig specifies webhook settings.
type WebhookConfig struct {
	URL    string `yaml:"url" envconfig:"WEBHOOK_URL"`
	Listen string `yaml:"listen" envconfig:"WEBHOOK_LISTEN"`
	Port   int    `yaml:"port" envconfig:"WEBHOOK_PORT"`
}

// LoggingConfig defines logging related configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT"`
	// KeysOrder is a comma-separated key list; "default" keeps the built-in order.
	KeysOrder string `yaml:"keys_order"`
	// DebugSample is "n/d", "d" or "0" and thins high-volume debug events.
	DebugSample string `yaml:"debug_sample"`
	Dir         string `yaml:"dir"`
	BotFile     string `yaml:"bot_file"`
	// Profile indicates environment profile such as "debug" or "prod".
	Profile string `yaml:"profile"`
}

const (
	RunModeWebhook  = "webhook"
	RunModeLongpoll = "longpoll"
)

// Update kinds accepted by rate_limit.exclude_updates.
const (
	UpdateCallback = "callback"
	UpdateMessage  = "message"
)

// RateLimitConfig holds settings for rate limiting. ExcludeUpdates lists
// update kinds (callback, message) that bypass the limiter.
type RateLimitConfig struct {
	IntervalMS     int      `yaml:"interval_ms" envconfig:"RATE_LIMIT_INTERVAL_MS"`
	ExcludeUpdates []string `yaml:"exclude_updates" envconfig:"RATE_LIMIT_EXCLUDE_UPDATES"`
}

// Config aggregates the configuration consumed by the Telegram runtime and logger.
// Applications embed it and load it together with their own sections.
type Config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	Logging   LoggingConfig   `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// Normalize validates cfg, canonicalizes enumerations in place and reports
// every problem found.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	var errs []error
	if strings.TrimSpace(cfg.Telegram.Token) == "" {
		errs = append(errs, errors.New("telegram token is required"))
	}
	errs = append(errs, cfg.normalizeRunMode(), cfg.normalizeRateLimit())
	return errors.Join(errs...)
}

func (cfg *Config) normalizeRunMode() error {
	mode := strings.ToLower(strings.TrimSpace(cfg.Telegram.RunMode))
	switch mode {
	case "", "polling":
		mode = RunModeLongpoll
	case RunModeLongpoll, RunModeWebhook:
	default:
		return fmt.Errorf("invalid telegram.run_mode %q; allowed: webhook, longpoll", cfg.Telegram.RunMode)
	}
	cfg.Telegram.RunMode = mode

	if mode == RunModeLongpoll {
		if cfg.Telegram.LongPollTimeoutSeconds < 0 {
			return errors.New("telegram.longpoll_timeout_seconds must be >= 0")
		}
		return nil
	}
	var errs []error
	if strings.TrimSpace(cfg.Webhook.URL) == "" {
		errs = append(errs, errors.New("webhook.url is required in webhook mode"))
	}
	if strings.TrimSpace(cfg.Webhook.Listen) == "" {
		errs = append(errs, errors.New("webhook.listen is required in webhook mode"))
	}
	if cfg.Webhook.Port <= 0 {
		errs = append(errs, errors.New("webhook.port must be > 0 in webhook mode"))
	}
	return errors.Join(errs...)
}

func (cfg *Config) normalizeRateLimit() error {
	if cfg.RateLimit.IntervalMS < 0 {
		return errors.New("rate_limit.interval_ms must be >= 0")
	}
	kinds := cfg.RateLimit.ExcludeUpdates[:0]
	for _, v := range cfg.RateLimit.ExcludeUpdates {
		kind := strings.ToLower(strings.TrimSpace(v))
		switch kind {
		case "":
			continue
		case UpdateCallback, UpdateMessage:
			if !slices.Contains(kinds, kind) {
				kinds = append(kinds, kind)
			}
		default:
			return fmt.Errorf("invalid rate_limit.exclude_updates value %q; allowed: callback, message", v)
		}
	}
	cfg.RateLimit.ExcludeUpdates = kinds
	return nil
}
