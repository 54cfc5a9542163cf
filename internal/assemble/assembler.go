package assemble

import (
	"goeda/domain/core"
	"goeda/domain/report"
	"goeda/domain/table"
)

// Assemble builds the final report document: a title page, a schema
// enforcement page, then one analysis page per analyzed column, in the
// order the results arrive (dataset column order).
func Assemble(ds *table.Dataset, enforcement *report.EnforcementReport, results []report.AnalysisResult) *report.Document {
	pages := make([]report.Page, 0, 2+len(results))

	rows := 0
	cols := 0
	fingerprint := core.DatasetFingerprint("")
	name := ""
	source := ""
	if ds != nil {
		rows = ds.Rows()
		cols = len(ds.Columns)
		fingerprint = ds.Fingerprint()
		name = ds.Name
	}
	if enforcement != nil {
		source = enforcement.SchemaSource
	}

	pages = append(pages, report.Page{
		Kind: report.PageTitle,
		Title: &report.TitleContent{
			Dataset:      name,
			Rows:         rows,
			Columns:      cols,
			SchemaSource: source,
			Fingerprint:  fingerprint,
			GeneratedAt:  core.Now(),
		},
	})

	pages = append(pages, report.Page{
		Kind:   report.PageSchema,
		Schema: enforcement,
	})

	for i := range results {
		pages = append(pages, report.Page{
			Kind:     report.PageAnalysis,
			Analysis: &results[i],
		})
	}

	return &report.Document{
		ID:        core.DocumentID(core.NewID()),
		CreatedAt: core.Now(),
		Pages:     pages,
	}
}
