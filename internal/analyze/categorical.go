package analyze

import (
	"fmt"
	"math"

	"goeda/domain/report"
	"goeda/domain/table"
)

// Categorical computes the frequency table for a categorical (or boolean)
// column and requests a bar chart of category counts.
func Categorical(col table.Column) report.AnalysisResult {
	values := make([]string, 0, col.Len())
	for _, v := range col.NonMissing() {
		values = append(values, v.String())
	}
	missing := col.Len() - len(values)

	frequencies := frequencyTable(values)

	mode := ""
	modeCount := 0
	if len(frequencies) > 0 {
		mode = frequencies[0].Category
		modeCount = frequencies[0].Count
	}

	statistics := map[string]interface{}{
		"count":       len(values),
		"missing":     missing,
		"distinct":    len(frequencies),
		"mode":        mode,
		"mode_count":  modeCount,
		"frequencies": frequencies,
		"entropy":     entropy(frequencies, len(values)),
	}

	visuals := []report.VizRequest{}
	if len(frequencies) > 0 {
		labels := make([]string, len(frequencies))
		counts := make([]int, len(frequencies))
		for i, f := range frequencies {
			labels[i] = f.Category
			counts[i] = f.Count
		}
		visuals = append(visuals, report.VizRequest{
			Kind:   report.ChartBar,
			Column: col.Name,
			Bar:    &report.BarData{Labels: labels, Counts: counts},
		})
	}

	narrative := fmt.Sprintf(
		"%s: %d values (%d missing) across %d categories, mode %q (%d occurrences)",
		col.Name, len(values), missing, len(frequencies), mode, modeCount,
	)

	return report.AnalysisResult{
		Column:     col.Name,
		Variant:    report.VariantCategorical,
		Statistics: statistics,
		Visuals:    visuals,
		Narrative:  narrative,
	}
}

// entropy measures category distribution inequality in bits
func entropy(frequencies []report.CategoryCount, total int) float64 {
	if total == 0 {
		return 0
	}
	e := 0.0
	for _, f := range frequencies {
		prob := float64(f.Count) / float64(total)
		if prob > 0 {
			e -= prob * math.Log2(prob)
		}
	}
	return e
}
