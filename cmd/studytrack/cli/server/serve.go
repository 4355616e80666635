package server

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwantia/studytrack/internal/config"
	"github.com/mwantia/studytrack/internal/server"
	"github.com/mwantia/studytrack/pkg/db/store"
	"github.com/mwantia/studytrack/pkg/log"
)

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the StudyTrack API server",
		Long:  "Start the local HTTP API a GUI client connects to.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			logService := log.NewLoggerService("studytrack", cfg.Log)

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

			srv := server.NewServer(cfg, st, logService)
			return srv.Serve(ctx)
		},
	}

	return cmd
}
