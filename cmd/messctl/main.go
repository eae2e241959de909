package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"hostel-mess/internal/config"
	"hostel-mess/internal/database"
	"hostel-mess/internal/logging"
	"hostel-mess/internal/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "messctl",
		Usage: "Administer the hostel mess database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file to load before reading the environment",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(config.EnvLogLevel),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := godotenv.Load(cmd.String("env-file")); err != nil && !errors.Is(err, os.ErrNotExist) {
				return ctx, fmt.Errorf("failed to load %s: %w", cmd.String("env-file"), err)
			}
			logging.SetDefault(cmd.String("log-level"), "text")
			return ctx, nil
		},
		Commands: []*cli.Command{
			migrateCmd(),
			dbCmd(),
			seedCmd(),
		},
	}
}

// loadConfig reads and validates the environment after Before has loaded the
// dotenv file.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply or revert schema migrations",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply every pending migration",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					return database.RunMigrations(cfg.Database.DSN())
				},
			},
			{
				Name:  "down",
				Usage: "Revert migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "steps",
						Value: 1,
						Usage: "number of migrations to revert, 0 reverts all",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					return database.RollbackMigrations(cfg.Database.DSN(), int(cmd.Int("steps")))
				},
			},
		},
	}
}

func dbCmd() *cli.Command {
	return &cli.Command{
		Name:  "db",
		Usage: "Database housekeeping",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create the application database when it does not exist",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					return database.EnsureDatabaseExists(ctx, cfg.Database)
				},
			},
		},
	}
}

func seedCmd() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load a weekly menu into the database",
		Description: `Loads the weekly menu from a YAML file, or the built-in menu when --file
is omitted. Meals are matched by day and meal type and their items replaced.

Example:
  messctl seed --file menu.yaml --replace`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "menu YAML file (default: built-in menu)",
			},
			&cli.BoolFlag{
				Name:  "replace",
				Usage: "delete every existing meal before loading",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var menu *seed.Menu
			if path := cmd.String("file"); path != "" {
				menu, err = seed.LoadFile(path)
			} else {
				menu, err = seed.Default()
			}
			if err != nil {
				return err
			}

			pool, err := database.Connect(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			res, err := seed.NewSeeder(pool).Apply(ctx, menu, cmd.Bool("replace"))
			if err != nil {
				return err
			}

			slog.Info("seed complete", "meals", res.Meals, "items", res.Items)
			return nil
		},
	}
}
