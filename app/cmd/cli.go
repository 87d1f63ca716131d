package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hitechrobotics/catalog-api/app/configs"
	"github.com/hitechrobotics/catalog-api/app/db/seeders"
	"github.com/hitechrobotics/catalog-api/app/models/migrations"
	"github.com/hitechrobotics/catalog-api/app/routes"
	"github.com/urfave/cli/v3"
)

// RunCli runs the command named in args. Without a command the API server
// starts.
func RunCli(ctx context.Context, env configs.ENV, logger *slog.Logger, args []string) error {
	cmd := &cli.Command{
		Name:  "catalog-api",
		Usage: "Robotics catalog content backend",
		Action: func(ctx context.Context, c *cli.Command) error {
			return serve(ctx, env, logger, false)
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the HTTP API",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "run database migration before serving"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return serve(ctx, env, logger, c.Bool("migrate"))
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env, logger)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return fmt.Errorf("migrate: %w", err)
					}
					logger.Info("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Load the demo catalog and site content",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "orders", Usage: "number of fake orders to create"},
					&cli.IntFlag{Name: "contacts", Usage: "number of fake contact messages to create"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env, logger)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return fmt.Errorf("migrate: %w", err)
					}
					opts := seeders.Options{Orders: int(c.Int("orders")), Contacts: int(c.Int("contacts"))}
					if err := seeders.DBSeed(ctx, db, env, opts, logger); err != nil {
						return err
					}
					logger.Info("seeding complete")
					return nil
				},
			},
		},
	}

	return cmd.Run(ctx, args)
}

func serve(ctx context.Context, env configs.ENV, logger *slog.Logger, migrate bool) error {
	db, err := configs.OpenConnection(env, logger)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	if migrate {
		if err := migrations.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	server := &http.Server{
		Addr:         env.Port,
		Handler:      routes.NewRouter(db, env, logger),
		ReadTimeout:  env.ReadTimeout,
		WriteTimeout: env.WriteTimeout,
		IdleTimeout:  env.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", server.Addr), slog.String("env", env.APP_ENV))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", env.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), env.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server stopped")
	return nil
}
