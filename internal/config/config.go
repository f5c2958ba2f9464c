// Package config loads the bot configuration: the core Telegram/logging
// settings plus database, assistant and bot sections.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/m3rciful/tynys/core/config"
	"github.com/m3rciful/tynys/core/database"
	"github.com/m3rciful/tynys/internal/domain"
)

// AssistantConfig configures the OpenAI-compatible text generation service.
type AssistantConfig struct {
	APIKey         string  `yaml:"api_key" envconfig:"OPENAI_API_KEY"`
	BaseURL        string  `yaml:"base_url" envconfig:"OPENAI_BASE_URL"`
	Model          string  `yaml:"model" envconfig:"OPENAI_MODEL"`
	Temperature    float64 `yaml:"temperature"`
	MaxTokens      int64   `yaml:"max_tokens"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	MaxRetries     int     `yaml:"max_retries"` // negative disables retries
	SystemPrompt   string  `yaml:"system_prompt" envconfig:"SYSTEM_PROMPT"`
}

// Timeout returns the per-request timeout.
func (a AssistantConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// BotConfig holds behaviour settings of the conversation flows.
type BotConfig struct {
	DefaultLanguage string `yaml:"default_language" envconfig:"DEFAULT_LANGUAGE"`
	PaceMS          int    `yaml:"pace_ms"`
	StatsDays       int    `yaml:"stats_days"`
}

// Pace returns the delay between scripted messages.
func (b BotConfig) Pace() time.Duration {
	return time.Duration(b.PaceMS) * time.Millisecond
}

// Config is the full application configuration.
type Config struct {
	Core      coreconfig.Config `yaml:",inline"`
	Database  database.Config   `yaml:"database"`
	Assistant AssistantConfig   `yaml:"assistant"`
	Bot       BotConfig         `yaml:"bot"`
}

// CoreConfig exposes the embedded core configuration to the runner.
func (c *Config) CoreConfig() *coreconfig.Config {
	if c == nil {
		return nil
	}
	return &c.Core
}

// Load reads configuration from a YAML file and environment variables.
// A missing file is tolerated so that a pure-environment deployment works.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}
	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates required secrets and fills defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return err
	}
	if err := cfg.Database.Normalize(); err != nil {
		return err
	}

	a := &cfg.Assistant
	if strings.TrimSpace(a.APIKey) == "" {
		return fmt.Errorf("assistant api key is required (OPENAI_API_KEY)")
	}
	if a.Model == "" {
		a.Model = "gpt-4o-mini"
	}
	if a.Temperature <= 0 {
		a.Temperature = 0.7
	}
	if a.MaxTokens <= 0 {
		a.MaxTokens = 450
	}
	if a.TimeoutSeconds <= 0 {
		a.TimeoutSeconds = 30
	}
	switch {
	case a.MaxRetries == 0:
		a.MaxRetries = 2
	case a.MaxRetries < 0:
		a.MaxRetries = 0
	}

	b := &cfg.Bot
	b.DefaultLanguage = strings.ToLower(strings.TrimSpace(b.DefaultLanguage))
	if !domain.IsSupportedLanguage(b.DefaultLanguage) {
		b.DefaultLanguage = domain.LangKazakh
	}
	if b.PaceMS <= 0 {
		b.PaceMS = 1000
	}
	if b.StatsDays <= 0 {
		b.StatsDays = 7
	}
	return nil
}
