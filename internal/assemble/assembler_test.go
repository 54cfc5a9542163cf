package assemble

import (
	"testing"

	"goeda/domain/report"
	"goeda/domain/table"
)

func testDataset(t *testing.T) *table.Dataset {
	t.Helper()
	ds, err := table.NewDataset("survey", []table.Column{
		{Name: "a", Values: []table.Value{table.NewNumericValue(1)}},
		{Name: "b", Values: []table.Value{table.NewStringValue("x")}},
	})
	if err != nil {
		t.Fatalf("NewDataset failed: %v", err)
	}
	return ds
}

func TestAssemblePageCount(t *testing.T) {
	ds := testDataset(t)
	enforcement := &report.EnforcementReport{SchemaSource: "inferred"}
	results := []report.AnalysisResult{
		{Column: "a", Variant: report.VariantNumeric},
		{Column: "b", Variant: report.VariantText},
	}

	doc := Assemble(ds, enforcement, results)

	// Title page + schema page + one page per analyzed column
	if len(doc.Pages) != 2+len(results) {
		t.Fatalf("Expected %d pages, got %d", 2+len(results), len(doc.Pages))
	}
	if doc.Pages[0].Kind != report.PageTitle {
		t.Errorf("Expected first page to be the title, got %s", doc.Pages[0].Kind)
	}
	if doc.Pages[1].Kind != report.PageSchema {
		t.Errorf("Expected second page to be the schema, got %s", doc.Pages[1].Kind)
	}
	for i, page := range doc.Pages[2:] {
		if page.Kind != report.PageAnalysis {
			t.Errorf("Page %d: expected analysis, got %s", i+2, page.Kind)
		}
		if page.Analysis.Column != results[i].Column {
			t.Errorf("Page %d: expected column %s, got %s", i+2, results[i].Column, page.Analysis.Column)
		}
	}

	if doc.ID == "" {
		t.Error("Expected a document ID")
	}

	title := doc.Pages[0].Title
	if title.Dataset != "survey" || title.Rows != 1 || title.Columns != 2 {
		t.Errorf("Unexpected title content: %+v", title)
	}
	if title.SchemaSource != "inferred" {
		t.Errorf("Expected schema source inferred, got %s", title.SchemaSource)
	}
	if title.Fingerprint != ds.Fingerprint() {
		t.Error("Expected the title fingerprint to match the dataset")
	}
}

func TestAssembleAnalysisPagesAccessor(t *testing.T) {
	ds := testDataset(t)
	doc := Assemble(ds, &report.EnforcementReport{}, []report.AnalysisResult{
		{Column: "a", Variant: report.VariantNumeric},
	})
	pages := doc.AnalysisPages()
	if len(pages) != 1 || pages[0].Column != "a" {
		t.Errorf("Expected one analysis page for column a, got %+v", pages)
	}
}
