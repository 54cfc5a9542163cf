package config

import (
	"os"
	"strconv"

	"goeda/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Analysis AnalysisConfig
	Database DatabaseConfig
	Server   ServerConfig
	Output   OutputConfig
}

// AnalysisConfig holds the heuristic thresholds the engine runs with.
// These are configuration values, not hardcoded constants: the classifier
// and handler receive this object explicitly at construction.
type AnalysisConfig struct {
	// NumericParseThreshold is the fraction of non-null values that must
	// parse as numbers for an unschema'd column to be inferred numeric.
	NumericParseThreshold float64
	// DatetimeParseThreshold is the fraction of non-null values that must
	// parse against the known date formats for datetime inference.
	DatetimeParseThreshold float64
	// CardinalityThreshold is the unique-values / row-count ratio below
	// which an unschema'd string column is treated as categorical.
	CardinalityThreshold float64
	// TopTerms is how many frequent terms the text analyzer reports.
	TopTerms int
	// PeriodGranularity buckets datetime values: "weekday" or "month".
	PeriodGranularity string
	// MaxWorkers bounds the per-column analysis fan-out. Zero means one
	// worker per CPU.
	MaxWorkers int
}

// DatabaseConfig holds report persistence settings. URL may be empty:
// persistence is optional and the pipeline runs without it.
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds HTTP surface settings
type ServerConfig struct {
	Port string
}

// OutputConfig holds export destination settings
type OutputConfig struct {
	Dir string
}

// DefaultAnalysisConfig returns the thresholds the engine ships with
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		NumericParseThreshold:  0.95,
		DatetimeParseThreshold: 0.5,
		CardinalityThreshold:   0.3,
		TopTerms:               10,
		PeriodGranularity:      "weekday",
		MaxWorkers:             0,
	}
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Analysis: loadAnalysisConfig(),
		Database: DatabaseConfig{URL: getEnvOrDefault("DATABASE_URL", "")},
		Server:   ServerConfig{Port: getEnvOrDefault("PORT", "8080")},
		Output:   OutputConfig{Dir: getEnvOrDefault("REPORT_DIR", "eda_reports")},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadAnalysisConfig() AnalysisConfig {
	defaults := DefaultAnalysisConfig()
	return AnalysisConfig{
		NumericParseThreshold:  getEnvFloatOrDefault("NUMERIC_PARSE_THRESHOLD", defaults.NumericParseThreshold),
		DatetimeParseThreshold: getEnvFloatOrDefault("DATETIME_PARSE_THRESHOLD", defaults.DatetimeParseThreshold),
		CardinalityThreshold:   getEnvFloatOrDefault("CARDINALITY_THRESHOLD", defaults.CardinalityThreshold),
		TopTerms:               getEnvIntOrDefault("TEXT_TOP_TERMS", defaults.TopTerms),
		PeriodGranularity:      getEnvOrDefault("PERIOD_GRANULARITY", defaults.PeriodGranularity),
		MaxWorkers:             getEnvIntOrDefault("MAX_WORKERS", defaults.MaxWorkers),
	}
}

func validateConfig(config *Config) error {
	a := config.Analysis
	if a.NumericParseThreshold <= 0 || a.NumericParseThreshold > 1 {
		return errors.ConfigInvalid("NUMERIC_PARSE_THRESHOLD must be in (0, 1]")
	}
	if a.DatetimeParseThreshold <= 0 || a.DatetimeParseThreshold > 1 {
		return errors.ConfigInvalid("DATETIME_PARSE_THRESHOLD must be in (0, 1]")
	}
	if a.CardinalityThreshold <= 0 || a.CardinalityThreshold > 1 {
		return errors.ConfigInvalid("CARDINALITY_THRESHOLD must be in (0, 1]")
	}
	if a.TopTerms < 1 {
		return errors.ConfigInvalid("TEXT_TOP_TERMS must be positive")
	}
	if a.PeriodGranularity != "weekday" && a.PeriodGranularity != "month" {
		return errors.ConfigInvalid("PERIOD_GRANULARITY must be 'weekday' or 'month'")
	}
	if a.MaxWorkers < 0 {
		return errors.ConfigInvalid("MAX_WORKERS cannot be negative")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
