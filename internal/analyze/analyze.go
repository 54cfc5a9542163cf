package analyze

import (
	"fmt"
	"sort"

	"goeda/domain/report"
	"goeda/domain/table"
	"goeda/internal/config"
)

// Run dispatches a column to the analyzer for its variant. The variant set
// is closed; every branch returns a result with that variant's fixed
// statistic keys, degenerate input included.
func Run(col table.Column, variant report.Variant, cfg config.AnalysisConfig) report.AnalysisResult {
	switch variant {
	case report.VariantNumeric:
		return Numeric(col)
	case report.VariantCategorical:
		return Categorical(col)
	case report.VariantDatetime:
		return Datetime(col, cfg.PeriodGranularity)
	case report.VariantText:
		return Text(col, cfg.TopTerms)
	default:
		return Missing(col, "")
	}
}

// StatKeys returns the fixed statistic key set for a variant. Every
// AnalysisResult of that variant carries exactly these keys.
func StatKeys(variant report.Variant) []string {
	switch variant {
	case report.VariantNumeric:
		return []string{
			"count", "missing", "mean", "median", "std_dev", "min", "max",
			"q1", "q3", "outliers", "skewness", "kurtosis", "normality_p",
		}
	case report.VariantCategorical:
		return []string{"count", "missing", "distinct", "mode", "mode_count", "frequencies", "entropy"}
	case report.VariantDatetime:
		return []string{"count", "missing", "min", "max", "span_days", "busiest_period", "period_counts"}
	case report.VariantText:
		return []string{"count", "missing", "avg_token_length", "vocabulary", "top_terms"}
	default:
		return []string{"count", "missing", "note"}
	}
}

// Failure wraps an analyzer failure as a missing-variant result so one
// column's defect never aborts the rest of the run.
func Failure(col table.Column, cause error) report.AnalysisResult {
	return Missing(col, fmt.Sprintf("analysis failed: %v", cause))
}

// frequencyTable counts string occurrences and orders them by count
// descending, ties broken by first-seen order.
func frequencyTable(values []string) []report.CategoryCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, v := range values {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	table := make([]report.CategoryCount, 0, len(order))
	for _, v := range order {
		table = append(table, report.CategoryCount{Category: v, Count: counts[v]})
	}
	// Stable sort on first-seen order, then by count: equal counts keep
	// their first-seen relative order.
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})
	return table
}
