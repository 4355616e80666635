package client

import (
	"context"
	"fmt"

	"github.com/mwantia/studytrack/internal/config"
	"github.com/mwantia/studytrack/pkg/db/store"
)

// withStore opens the study store, migrates it and hands it to fn. Every
// command holds the connection only for its own unit of work.
func withStore(fn func(ctx context.Context, st store.StudyStore) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	st, err := store.NewSQLiteStore(store.SQLiteConfig{
		Path:     cfg.Database.SQLite.Path,
		LogLevel: store.ParseLogLevel(cfg.Database.SQLite.LogLevel),
	})
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	if err := st.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return fn(ctx, st)
}
