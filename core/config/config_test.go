package config

import (
	"strings"
	"testing"
)

func TestNormalizeRequiresToken(t *testing.T) {
	cfg := &Config{}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestNormalizeDefaultsToLongpoll(t *testing.T) {
	cfg := &Config{Telegram: TelegramConfig{Token: "t", RunMode: " Polling "}}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run mode = %q, want %q", cfg.Telegram.RunMode, RunModeLongpoll)
	}
}

func TestNormalizeWebhookNeedsURL(t *testing.T) {
	cfg := &Config{Telegram: TelegramConfig{Token: "t", RunMode: "webhook"}}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for webhook without url")
	}
}

func TestNormalizeRateLimitExclusions(t *testing.T) {
	cfg := &Config{
		Telegram:  TelegramConfig{Token: "t"},
		RateLimit: RateLimitConfig{ExcludeUpdates: []string{" Callback ", ""}},
	}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.RateLimit.ExcludeUpdates[0] != UpdateCallback {
		t.Fatalf("exclude = %q, want %q", cfg.RateLimit.ExcludeUpdates[0], UpdateCallback)
	}

	cfg.RateLimit.ExcludeUpdates = []string{"poll"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unknown update kind")
	}
}

func TestNormalizeReportsAllProblems(t *testing.T) {
	cfg := &Config{
		Telegram: TelegramConfig{RunMode: "webhook"},
		Webhook:  WebhookConfig{Listen: "0.0.0.0"},
	}
	err := Normalize(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"token", "webhook.url", "webhook.port"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("%q missing from %v", want, err)
		}
	}
}

func TestNormalizeDeduplicatesExclusions(t *testing.T) {
	cfg := &Config{
		Telegram:  TelegramConfig{Token: "t"},
		RateLimit: RateLimitConfig{ExcludeUpdates: []string{"message", "MESSAGE", "callback"}},
	}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(cfg.RateLimit.ExcludeUpdates) != 2 {
		t.Fatalf("exclude = %v", cfg.RateLimit.ExcludeUpdates)
	}
}
