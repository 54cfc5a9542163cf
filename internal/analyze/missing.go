package analyze

import (
	"fmt"

	"goeda/domain/report"
	"goeda/domain/table"
)

// Missing reports a column that carries no analyzable values. The note
// explains why the column landed here; empty means the column itself is
// empty or all-missing.
func Missing(col table.Column, note string) report.AnalysisResult {
	if note == "" {
		note = "column has no usable values"
	}

	statistics := map[string]interface{}{
		"count":   col.Len(),
		"missing": col.MissingCount(),
		"note":    note,
	}

	return report.AnalysisResult{
		Column:     col.Name,
		Variant:    report.VariantMissing,
		Statistics: statistics,
		Visuals:    []report.VizRequest{},
		Narrative:  fmt.Sprintf("%s: %s (%d of %d values missing)", col.Name, note, col.MissingCount(), col.Len()),
	}
}
