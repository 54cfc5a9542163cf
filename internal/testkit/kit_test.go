package testkit

import (
	"testing"
)

func TestSurveyGeneratorDeterministic(t *testing.T) {
	cfg := DefaultSurveyConfig()
	a, err := NewSurveyDataGenerator(cfg).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := NewSurveyDataGenerator(cfg).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if a.Rows() != cfg.RecordCount {
		t.Errorf("Expected %d rows, got %d", cfg.RecordCount, a.Rows())
	}
	if len(a.Columns) != 6 {
		t.Errorf("Expected 6 columns, got %d", len(a.Columns))
	}

	// Same seed, same data
	for i, col := range a.Columns {
		other := b.Columns[i]
		for j := range col.Values {
			if col.Values[j].String() != other.Values[j].String() {
				t.Fatalf("Column %s row %d differs between identical seeds", col.Name, j)
			}
		}
	}
}

func TestSurveyGeneratorRejectsZeroRecords(t *testing.T) {
	if _, err := NewSurveyDataGenerator(SurveyGeneratorConfig{}).Generate(); err == nil {
		t.Fatal("Expected an error for zero records")
	}
}
