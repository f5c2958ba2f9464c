package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m3rciful/tynys/core/database"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
database:
  driver: memory
assistant:
  api_key: "sk-test"
bot:
  default_language: "xx"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Bot.DefaultLanguage != "kk" {
		t.Fatalf("default language = %q, want kk", cfg.Bot.DefaultLanguage)
	}
	if cfg.Assistant.Model != "gpt-4o-mini" || cfg.Assistant.MaxTokens != 450 {
		t.Fatalf("unexpected assistant defaults: %+v", cfg.Assistant)
	}
	if cfg.Bot.StatsDays != 7 || cfg.Bot.Pace() <= 0 {
		t.Fatalf("unexpected bot defaults: %+v", cfg.Bot)
	}
	if cfg.Database.Driver != database.DriverMemory {
		t.Fatalf("driver = %q", cfg.Database.Driver)
	}
	if cfg.CoreConfig().Telegram.RunMode != "longpoll" {
		t.Fatalf("run mode = %q", cfg.CoreConfig().Telegram.RunMode)
	}
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("OPENAI_API_KEY", "")

	noKey := writeConfig(t, `
telegram:
  token: "123:abc"
database:
  driver: memory
`)
	if _, err := Load(noKey); err == nil {
		t.Fatal("expected error without assistant api key")
	}

	noToken := writeConfig(t, `
database:
  driver: memory
assistant:
  api_key: "sk-test"
`)
	if _, err := Load(noToken); err == nil {
		t.Fatal("expected error without bot token")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("BOT_TOKEN", "999:env")
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "bot.db"))

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Core.Telegram.Token != "999:env" {
		t.Fatalf("token = %q", cfg.Core.Telegram.Token)
	}
	if cfg.Database.Driver != database.DriverSQLite || cfg.Database.MaxConnections != 1 {
		t.Fatalf("unexpected database config: %+v", cfg.Database)
	}
}
