package main

import (
	"context"
	"os"
	"time"

	config "github.com/ecobazaar/ml-backend/internal/cfg"
	csvRepo "github.com/ecobazaar/ml-backend/internal/repository/csv"
	"github.com/ecobazaar/ml-backend/internal/repository/pgdb"
	"github.com/ecobazaar/ml-backend/internal/usecase"
	"github.com/ecobazaar/ml-backend/pkg/logger"
	"github.com/ecobazaar/ml-backend/pkg/postgres"
	"github.com/joho/godotenv"
)

const exportTimeout = 2 * time.Minute

// Экспортёр — разовый процесс: выгружает живой каталог из PostgreSQL
// в CSV, который потом читают тренер и чат-бот.
func main() {
	_ = godotenv.Load()

	log := logger.NewSlogLogger()

	pgCfg, err := config.LoadPGDB(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	db, err := postgres.Connect(pgCfg)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	exportUC := usecase.NewExportUC(
		pgdb.NewProductRepo(db.Pool),
		csvRepo.NewCatalogRepo(config.LoadCatalogCfg()),
		log,
	)

	count, err := exportUC.Export(ctx)
	if err != nil {
		log.Errorf(err, "export failed")
		os.Exit(1)
	}

	log.Infof("Export complete: %d products", count)
}
