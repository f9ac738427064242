package main

import (
	"fmt"

	"inventario/internal/config"
	"inventario/internal/infra"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:           "inventario",
		Short:         "Inventory and point-of-sale recordkeeping service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			c, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = c
			setupLogger(cfg)
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return serve(cfg)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default).",
		RunE: func(_ *cobra.Command, _ []string) error {
			return serve(cfg)
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema and exit.",
		Long:  `Safe to run repeatedly: existing tables and rows are kept.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			db, err := infra.NewDatabase(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
			log.Info().Msg("schema up to date")
			return nil
		},
	}

	rootCmd.AddCommand(serveCmd, migrateCmd)
	return rootCmd
}
