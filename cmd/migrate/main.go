package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Domenick1991/travelapp/config"
	"github.com/Domenick1991/travelapp/internal/logger"
	"github.com/Domenick1991/travelapp/internal/repository"
	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the travelapp database schema and seed data",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", envOr("CONFIG_PATH", "config.yaml"), "Path to config.yaml")

	cmd.AddCommand(upCmd(&cfgPath), downCmd(&cfgPath), versionCmd(&cfgPath), verifyCmd(&cfgPath))
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openMigrator(cfgPath string) (*migrate.Migrate, error) {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	return repository.NewMigrator(cfg.Database.MigrationURL())
}

func upCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			m, err := openMigrator(*cfgPath)
			if err != nil {
				return err
			}
			defer m.Close()

			log := logger.New("development")
			if err := m.Up(); err != nil {
				if errors.Is(err, migrate.ErrNoChange) {
					log.Info().Msg("schema_up_to_date")
					return nil
				}
				return fmt.Errorf("migrate up: %w", err)
			}
			log.Info().Msg("migrations_applied")
			return nil
		},
	}
}

func downCmd(cfgPath *string) *cobra.Command {
	var steps int

	c := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations (one step by default)",
		RunE: func(_ *cobra.Command, _ []string) error {
			if steps < 1 {
				return fmt.Errorf("steps must be positive, got %d", steps)
			}
			m, err := openMigrator(*cfgPath)
			if err != nil {
				return err
			}
			defer m.Close()

			if err := m.Steps(-steps); err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}
			log := logger.New("development")
			log.Info().Int("steps", steps).Msg("migrations_rolled_back")
			return nil
		},
	}
	c.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")
	return c
}

func versionCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := openMigrator(*cfgPath)
			if err != nil {
				return err
			}
			defer m.Close()

			version, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				cmd.Println("no migrations applied")
				return nil
			}
			if err != nil {
				return fmt.Errorf("read version: %w", err)
			}
			out := strconv.FormatUint(uint64(version), 10)
			if dirty {
				out += " (dirty)"
			}
			cmd.Println(out)
			return nil
		},
	}
}

func verifyCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Validate every stored flight row",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(*cfgPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			pool, err := pgxpool.New(ctx, cfg.Database.DSN())
			if err != nil {
				return fmt.Errorf("connect postgres: %w", err)
			}
			defer pool.Close()

			invalid, err := repository.VerifyFlights(ctx, pool)
			if err != nil {
				return err
			}
			return reportInvalidFlights(cmd, invalid)
		},
	}
}

func reportInvalidFlights(cmd *cobra.Command, invalid []repository.InvalidFlight) error {
	for _, f := range invalid {
		cmd.Printf("flight %d (%s): %v\n", f.ID, f.FlightNumber, f.Err)
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%d invalid flight rows", len(invalid))
	}
	cmd.Println("all flights valid")
	return nil
}
