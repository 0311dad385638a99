package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/Veraticus/reroute/internal/config"
	"github.com/Veraticus/reroute/internal/rules"
	"github.com/Veraticus/reroute/internal/storage"
)

// newRouter constructs the session's router, merging any persisted keywords.
func newRouter() *rules.Router {
	path := config.ExpandPath(viper.GetString("rules.path"))
	return rules.NewRouter(rules.NewFileStore(path))
}

// initStorage opens the audit database and applies pending migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	path := config.ExpandPath(viper.GetString("database.path"))

	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to migrate audit database: %w", err)
	}
	return store, nil
}
