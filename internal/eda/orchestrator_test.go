package eda

import (
	"context"
	"errors"
	"testing"

	"goeda/domain/core"
	"goeda/domain/report"
	"goeda/domain/schema"
	"goeda/domain/table"
	"goeda/internal/config"
	"goeda/internal/enforce"
)

func stringColumn(name string, values ...string) table.Column {
	col := table.Column{Name: name}
	for _, v := range values {
		if v == "" {
			col.Values = append(col.Values, table.NewMissingValue())
		} else {
			col.Values = append(col.Values, table.NewStringValue(v))
		}
	}
	return col
}

func testDataset(t *testing.T) (*table.Dataset, *report.EnforcementReport) {
	t.Helper()
	ds, err := table.NewDataset("d", []table.Column{
		stringColumn("age", "18", "25", "40", "33"),
		stringColumn("status", "a", "b", "a", "a"),
		stringColumn("visit", "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"),
		stringColumn("gone", "", "", "", ""),
	})
	if err != nil {
		t.Fatalf("NewDataset failed: %v", err)
	}

	cast, enforcement, err := enforce.NewEnforcer(config.DefaultAnalysisConfig(), nil).Enforce(ds, nil)
	if err != nil {
		t.Fatalf("Enforce failed: %v", err)
	}
	return cast, enforcement
}

func TestExploreOrderAndCount(t *testing.T) {
	ds, enforcement := testDataset(t)
	o := NewOrchestrator(config.DefaultAnalysisConfig(), nil)

	results, err := o.Explore(context.Background(), ds, enforcement)
	if err != nil {
		t.Fatalf("Explore failed: %v", err)
	}

	if len(results) != len(ds.Columns) {
		t.Fatalf("Expected %d results, got %d", len(ds.Columns), len(results))
	}
	for i, col := range ds.Columns {
		if results[i].Column != col.Name {
			t.Errorf("Result %d: expected column %s, got %s", i, col.Name, results[i].Column)
		}
	}

	wantVariants := map[string]report.Variant{
		"age":    report.VariantNumeric,
		"status": report.VariantCategorical,
		"visit":  report.VariantDatetime,
		"gone":   report.VariantMissing,
	}
	for _, r := range results {
		if r.Variant != wantVariants[r.Column] {
			t.Errorf("Column %s: expected variant %s, got %s", r.Column, wantVariants[r.Column], r.Variant)
		}
	}
}

func TestExploreSingleWorkerMatchesOrder(t *testing.T) {
	ds, enforcement := testDataset(t)
	cfg := config.DefaultAnalysisConfig()
	cfg.MaxWorkers = 1
	o := NewOrchestrator(cfg, nil)

	results, err := o.Explore(context.Background(), ds, enforcement)
	if err != nil {
		t.Fatalf("Explore failed: %v", err)
	}
	for i, col := range ds.Columns {
		if results[i].Column != col.Name {
			t.Errorf("Result %d: expected column %s, got %s", i, col.Name, results[i].Column)
		}
	}
}

func TestAnalyzeColumnUnknown(t *testing.T) {
	ds, enforcement := testDataset(t)
	o := NewOrchestrator(config.DefaultAnalysisConfig(), nil)

	_, err := o.AnalyzeColumn(ds, enforcement, "nope")
	if err == nil {
		t.Fatal("Expected an error for an unknown column")
	}
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestAnalyzeColumnCastFailedLandsOnMissing(t *testing.T) {
	ds, err := table.NewDataset("d", []table.Column{
		stringColumn("age", "abc", "def"),
	})
	if err != nil {
		t.Fatalf("NewDataset failed: %v", err)
	}
	sch, _ := schema.New("s", map[string]schema.FieldSpec{
		"age": {Type: schema.FieldNumeric},
	})

	cast, enforcement, err := enforce.NewEnforcer(config.DefaultAnalysisConfig(), nil).Enforce(ds, sch)
	if err != nil {
		t.Fatalf("Enforce failed: %v", err)
	}

	o := NewOrchestrator(config.DefaultAnalysisConfig(), nil)
	result, err := o.AnalyzeColumn(cast, enforcement, "age")
	if err != nil {
		t.Fatalf("AnalyzeColumn failed: %v", err)
	}
	if result.Variant != report.VariantMissing {
		t.Errorf("Expected missing variant after a failed cast, got %s", result.Variant)
	}
}

func TestExploreEmptyDataset(t *testing.T) {
	o := NewOrchestrator(config.DefaultAnalysisConfig(), nil)
	if _, err := o.Explore(context.Background(), nil, nil); err == nil {
		t.Fatal("Expected an error for an empty dataset")
	}
}
