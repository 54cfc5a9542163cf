package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"goeda/adapters/export"
	"goeda/adapters/loader"
	"goeda/adapters/schemafile"
	"goeda/app"
	"goeda/internal"
	"goeda/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	datasetPath := flag.String("data", "", "path to the dataset file (CSV or XLSX)")
	schemaPath := flag.String("schema", "", "optional path to a JSON schema file")
	outDir := flag.String("out", "", "output directory (default REPORT_DIR)")
	flag.Parse()

	if *datasetPath == "" {
		fmt.Fprintln(os.Stderr, "usage: goeda -data <file.csv|file.xlsx> [-schema schema.json] [-out dir]")
		os.Exit(2)
	}

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dir := appConfig.Output.Dir
	if *outDir != "" {
		dir = *outDir
	}

	logger := internal.NewDefaultLogger()
	service := app.NewEDAService(
		appConfig.Analysis,
		loader.NewFileReader(),
		schemafile.NewLoader(),
		nil, // no persistence for one-shot runs
		logger,
	)

	ctx := context.Background()
	doc, err := service.RunReport(ctx, *datasetPath, *schemaPath)
	if err != nil {
		log.Fatalf("Report generation failed: %v", err)
	}

	jsonPath, err := export.NewJSONExporter().Export(ctx, doc, dir)
	if err != nil {
		log.Fatalf("JSON export failed: %v", err)
	}
	mdPath, err := export.NewMarkdownExporter().Export(ctx, doc, dir)
	if err != nil {
		log.Fatalf("Markdown export failed: %v", err)
	}

	logger.Info("report written: %s, %s", jsonPath, mdPath)
}
