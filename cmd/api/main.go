package main

import (
	"context"
	"log"

	"goeda/adapters/loader"
	"goeda/adapters/postgres"
	"goeda/adapters/schemafile"
	"goeda/app"
	"goeda/internal"
	"goeda/internal/config"
	"goeda/ports"
	"goeda/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	// Persistence is optional: without DATABASE_URL the API runs reports
	// but does not store them.
	var repo ports.ReportRepository
	if appConfig.Database.URL != "" {
		db, err := sqlx.Connect("postgres", appConfig.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := postgres.Migrate(context.Background(), db); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
		repo = postgres.NewReportRepository(db)
	} else {
		logger.Warn("DATABASE_URL not set, reports will not be persisted")
	}

	service := app.NewEDAService(
		appConfig.Analysis,
		loader.NewFileReader(),
		schemafile.NewLoader(),
		repo,
		logger,
	)

	httpApp := ui.NewApp(service, repo, logger)
	if err := httpApp.Serve(ui.Config{Port: appConfig.Server.Port}); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
