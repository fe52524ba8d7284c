package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pocketprep/pocketprep/internal/ai"
	"github.com/pocketprep/pocketprep/internal/common"
	"github.com/pocketprep/pocketprep/internal/config"
	"github.com/pocketprep/pocketprep/internal/service"
	"github.com/pocketprep/pocketprep/internal/storage"
	"github.com/pocketprep/pocketprep/internal/templates"
)

// initStore opens the database, runs migrations, and seeds the built-in
// templates on first use.
func initStore(ctx context.Context) (service.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, common.NewUserError("failed to open the packing list database", err)
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := templates.Seed(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to seed templates: %w", err)
	}

	return store, nil
}

// newGenerator builds the AI backend from configuration. With no provider
// configured the suggestion flow runs entirely on the local fallback.
func newGenerator() (ai.Generator, error) {
	cfg := ai.Config{
		Provider:   viper.GetString("ai.provider"),
		APIKey:     viper.GetString("ai.api_key"),
		Model:      viper.GetString("ai.model"),
		LocalPath:  viper.GetString("ai.local_path"),
		MaxTokens:  viper.GetInt("ai.max_tokens"),
		MaxRetries: viper.GetInt("ai.max_retries"),
		RetryDelay: viper.GetDuration("ai.retry_delay"),
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = time.Second
	}
	return ai.NewGenerator(cfg)
}
