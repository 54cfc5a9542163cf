package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"goeda/adapters/export"
	"goeda/adapters/loader"
	"goeda/adapters/schemafile"
	"goeda/app"
	"goeda/domain/schema"
	"goeda/internal"
	"goeda/internal/config"
	"goeda/internal/eda"
	"goeda/internal/enforce"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "goeda-cli",
		Short: "Exploratory data analysis for tabular research datasets",
	}

	rootCmd.AddCommand(
		newReportCmd(),
		newColumnCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	// .env is optional for CLI runs
	_ = godotenv.Load()
	return config.Load()
}

func newReportCmd() *cobra.Command {
	var schemaPath string
	var outDir string

	cmd := &cobra.Command{
		Use:   "report [dataset-file]",
		Short: "Run the full analysis pipeline and export a report",
		Long: `Load a CSV or XLSX dataset, enforce the schema (or infer types),
analyze every column and write JSON and Markdown reports.

Example: goeda-cli report survey.csv --schema survey_schema.json --out reports/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := loadConfig()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = appConfig.Output.Dir
			}

			service := app.NewEDAService(
				appConfig.Analysis,
				loader.NewFileReader(),
				schemafile.NewLoader(),
				nil,
				internal.NewDefaultLogger(),
			)

			ctx := context.Background()
			doc, err := service.RunReport(ctx, args[0], schemaPath)
			if err != nil {
				return err
			}

			jsonPath, err := export.NewJSONExporter().Export(ctx, doc, outDir)
			if err != nil {
				return err
			}
			mdPath, err := export.NewMarkdownExporter().Export(ctx, doc, outDir)
			if err != nil {
				return err
			}

			fmt.Printf("Report %s: %d pages\n", doc.ID, len(doc.Pages))
			fmt.Printf("  JSON:     %s\n", jsonPath)
			fmt.Printf("  Markdown: %s\n", mdPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "JSON schema file (omit to infer types)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory")
	return cmd
}

func newColumnCmd() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "column [dataset-file] [column-name]",
		Short: "Analyze a single column and print its statistics as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := context.Background()
			ds, err := loader.NewFileReader().Load(ctx, args[0])
			if err != nil {
				return err
			}

			var sch *schema.Schema
			if schemaPath != "" {
				sch, err = schemafile.NewLoader().Load(ctx, schemaPath)
				if err != nil {
					return err
				}
			}

			logger := internal.NewDefaultLogger()
			cast, enforcement, err := enforce.NewEnforcer(appConfig.Analysis, logger).Enforce(ds, sch)
			if err != nil {
				return err
			}

			orchestrator := eda.NewOrchestrator(appConfig.Analysis, logger)
			result, err := orchestrator.AnalyzeColumn(cast, enforcement, args[1])
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "JSON schema file (omit to infer types)")
	return cmd
}
