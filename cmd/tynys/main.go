package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/m3rciful/tynys/core/bootstrap"
	"github.com/m3rciful/tynys/core/cmd"
	"github.com/m3rciful/tynys/core/database"
	"github.com/m3rciful/tynys/internal/assistant"
	"github.com/m3rciful/tynys/internal/bot"
	"github.com/m3rciful/tynys/internal/config"
	"github.com/m3rciful/tynys/internal/flow"
	"github.com/m3rciful/tynys/internal/language"
	"github.com/m3rciful/tynys/internal/quiz"
	"github.com/m3rciful/tynys/internal/stats"
	"github.com/m3rciful/tynys/internal/storage/memory"
	"github.com/m3rciful/tynys/internal/storage/sqlstore"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	err := cmd.Run(cmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (cmd.ConfigCarrier, error) {
			return config.Load(path)
		},
		Bootstrap: func(ctx context.Context, carrier cmd.ConfigCarrier) (cmd.TelegramApp, error) {
			cfg, ok := carrier.(*config.Config)
			if !ok {
				return nil, fmt.Errorf("unexpected config type %T", carrier)
			}
			return build(ctx, cfg)
		},
	})
	if err != nil {
		log.Fatal(err)
	}
}

func build(ctx context.Context, cfg *config.Config) (*bot.App, error) {
	if err := quiz.ValidateCatalogs(); err != nil {
		return nil, fmt.Errorf("quiz catalogs: %w", err)
	}

	res, err := bootstrap.Run(ctx, bootstrap.Options{
		Config:   &cfg.Core,
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	var (
		store  flow.Store
		closer io.Closer
	)
	if cfg.Database.Driver == database.DriverMemory {
		store = memory.New()
	} else {
		store = sqlstore.New(res.DB)
		closer = res.DB
	}

	client := assistant.NewClient(cfg.Assistant.APIKey, cfg.Assistant.BaseURL, cfg.Assistant.MaxRetries)
	bridge := assistant.New(&client.Chat.Completions, assistant.Options{
		Model:        cfg.Assistant.Model,
		Temperature:  cfg.Assistant.Temperature,
		MaxTokens:    cfg.Assistant.MaxTokens,
		Timeout:      cfg.Assistant.Timeout(),
		SystemPrompt: cfg.Assistant.SystemPrompt,
	})

	engine := flow.New(flow.Options{
		Store:     store,
		Languages: language.NewResolver(store, cfg.Bot.DefaultLanguage),
		Stats:     stats.NewAggregator(store, cfg.Bot.StatsDays),
		Assistant: bridge,
		Pace:      cfg.Bot.Pace(),
	})
	return bot.New(cfg, engine, closer), nil
}
