package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"ratesheets/adapters/excel"
	"ratesheets/adapters/postgres"
	"ratesheets/app"
	"ratesheets/internal"
	"ratesheets/internal/config"
	"ratesheets/internal/errors"
	"ratesheets/internal/migration"
)

// initDatabase initializes the PostgreSQL database connection.
func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}
	return db, nil
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := initDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.MigrateOnStart {
		if err := migration.EnsureSchema(ctx, db); err != nil {
			return err
		}
	}

	logger := internal.DefaultLogger
	service := app.NewExportService(
		postgres.NewRateRepository(db),
		excel.NewWorkbookWriter(cfg.Export.OutputFile),
		cfg.Export.ClientID,
		cfg.Export.Concurrency,
		logger,
	)
	if err := service.Run(ctx); err != nil {
		return err
	}

	logger.Info("workbook written to %s", cfg.Export.OutputFile)
	return nil
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	if err := run(context.Background()); err != nil {
		log.Fatalf("[ERROR] export failed (%s): %v", errors.GetCode(err), err)
	}
}
