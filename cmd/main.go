package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"rental-core/cmd/bootstrap"
	"rental-core/internal/infra/db"
	"rental-core/internal/pkg/config"
	"rental-core/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rental-core",
		Short: "Rental lifecycle engine",
	}

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		sweepCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// serve keeps the engine resident so a transport layer or scheduler can be
// attached through the fx graph.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the engine and block until shutdown",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := fx.New(
				bootstrap.Module,
				fx.Invoke(func(logger *slog.Logger) {
					logger.Info("engine started")
				}),
			)

			if err := app.Start(context.Background()); err != nil {
				return err
			}

			<-app.Done()

			stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return app.Stop(stopCtx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, cleanup, err := db.Connect(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := db.Migrate(ctx, pool); err != nil {
				return err
			}
			slog.Info("schema applied")
			return nil
		},
	}
}

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Expire active contracts whose period has ended",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var maintenance commands.MaintenanceCommands

			app := fx.New(
				bootstrap.Module,
				fx.Populate(&maintenance),
			)

			ctx := cmd.Context()
			if err := app.Start(ctx); err != nil {
				return err
			}
			defer func() {
				stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				_ = app.Stop(stopCtx)
			}()

			swept, err := maintenance.SweepExpiredContracts(ctx)
			if err != nil {
				return err
			}
			slog.Info("sweep finished", "expired_contracts", swept)
			return nil
		},
	}
}
