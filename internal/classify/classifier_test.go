package classify

import (
	"fmt"
	"testing"

	"goeda/domain/report"
	"goeda/domain/schema"
	"goeda/domain/table"
	"goeda/internal/config"
)

func newTestClassifier() *Classifier {
	return NewClassifier(config.DefaultAnalysisConfig())
}

func stringColumn(name string, values ...string) table.Column {
	col := table.Column{Name: name}
	for _, v := range values {
		col.Values = append(col.Values, table.NewStringValue(v))
	}
	return col
}

func TestClassifyEnforcedTypes(t *testing.T) {
	col := stringColumn("c", "a", "b")

	tests := []struct {
		enforced schema.FieldType
		want     report.Variant
	}{
		{schema.FieldNumeric, report.VariantNumeric},
		{schema.FieldCategorical, report.VariantCategorical},
		{schema.FieldDatetime, report.VariantDatetime},
		{schema.FieldText, report.VariantText},
		{schema.FieldBoolean, report.VariantCategorical},
	}

	c := newTestClassifier()
	for _, tt := range tests {
		if got := c.Classify(col, tt.enforced); got != tt.want {
			t.Errorf("Classify(%s) = %s, expected %s", tt.enforced, got, tt.want)
		}
	}
}

func TestClassifyAllMissingWinsOverEnforcedType(t *testing.T) {
	col := table.Column{Name: "gone", Values: []table.Value{
		table.NewMissingValue(),
		table.NewMissingValue(),
	}}
	if got := newTestClassifier().Classify(col, schema.FieldNumeric); got != report.VariantMissing {
		t.Errorf("Expected missing variant for all-missing column, got %s", got)
	}
	if got := newTestClassifier().Classify(table.Column{Name: "empty"}, ""); got != report.VariantMissing {
		t.Errorf("Expected missing variant for empty column, got %s", got)
	}
}

func TestClassifyInference(t *testing.T) {
	c := newTestClassifier()

	numbers := stringColumn("n", "1", "2.5", "3", "$400")
	if got := c.Classify(numbers, ""); got != report.VariantNumeric {
		t.Errorf("Expected numeric for parseable numbers, got %s", got)
	}

	dates := stringColumn("d", "2024-01-01", "2024-02-01", "not a date", "2024-03-01")
	if got := c.Classify(dates, ""); got != report.VariantDatetime {
		t.Errorf("Expected datetime for majority-date column, got %s", got)
	}

	// 2 distinct values over 10 rows: cardinality 0.2 < 0.3
	repeated := stringColumn("s", "a", "b", "a", "a", "b", "a", "b", "a", "a", "b")
	if got := c.Classify(repeated, ""); got != report.VariantCategorical {
		t.Errorf("Expected categorical for low-cardinality column, got %s", got)
	}

	var freeText []string
	for i := 0; i < 10; i++ {
		freeText = append(freeText, fmt.Sprintf("unique comment number %d", i))
	}
	text := stringColumn("t", freeText...)
	if got := c.Classify(text, ""); got != report.VariantText {
		t.Errorf("Expected text for high-cardinality column, got %s", got)
	}
}

func TestClassifyNumericBeatsCategorical(t *testing.T) {
	// A 0/1 flag parses fully numeric and has low cardinality; numeric wins
	flag := stringColumn("f", "0", "1", "0", "0", "1", "0", "1", "0", "0", "1")
	if got := newTestClassifier().Classify(flag, ""); got != report.VariantNumeric {
		t.Errorf("Expected numeric to win over categorical for 0/1 flag, got %s", got)
	}
}

func TestClassifyThresholdBoundaries(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()
	c := NewClassifier(cfg)

	// 19 of 20 numeric = 0.95, exactly at the threshold: inclusive
	values := make([]string, 0, 20)
	for i := 0; i < 19; i++ {
		values = append(values, fmt.Sprintf("%d", i))
	}
	values = append(values, "not numeric words here")
	atThreshold := stringColumn("n", values...)
	if got := c.Classify(atThreshold, ""); got != report.VariantNumeric {
		t.Errorf("Expected numeric at exactly the parse threshold, got %s", got)
	}

	// 18 of 20 numeric = 0.90, below the threshold: falls through. The two
	// non-numeric strings keep cardinality at 1.0, so the column reads as text.
	values[18] = "alpha words one"
	below := stringColumn("n", values...)
	if got := c.Classify(below, ""); got != report.VariantText {
		t.Errorf("Expected text below the parse threshold, got %s", got)
	}
}
