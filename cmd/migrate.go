package main

import (
	"errors"
	"log/slog"

	"github.com/Dosada05/cup-organizer/config"
	"github.com/Dosada05/cup-organizer/db"
	"github.com/urfave/cli/v2"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations for the postgres store",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					logger, dsn, err := migrationSetup(c)
					if err != nil {
						return err
					}
					version, err := db.MigrateUp(dsn)
					if err != nil {
						return err
					}
					logger.Info("migrations applied", slog.Uint64("version", uint64(version)))
					return nil
				},
			},
			{
				Name:  "down",
				Usage: "roll back the last migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "how many migrations to roll back"},
				},
				Action: func(c *cli.Context) error {
					logger, dsn, err := migrationSetup(c)
					if err != nil {
						return err
					}
					version, err := db.MigrateDown(dsn, c.Int("steps"))
					if err != nil {
						return err
					}
					logger.Info("migrations rolled back", slog.Uint64("version", uint64(version)))
					return nil
				},
			},
		},
	}
}

func migrationSetup(c *cli.Context) (*slog.Logger, string, error) {
	logger, err := newLogger(c)
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, "", err
	}
	if cfg.DatabaseURL == "" {
		return nil, "", errors.New("DATABASE_URL is not set")
	}
	return logger, cfg.DatabaseURL, nil
}
