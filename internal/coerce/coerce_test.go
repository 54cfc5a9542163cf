package coerce

import (
	"testing"
	"time"

	"goeda/domain/table"
)

func TestTryNumeric(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"42", 42, true},
		{"3.14", 3.14, true},
		{"-7", -7, true},
		{"$1,234.50", 1234.50, true},
		{"(500)", -500, true},
		{"12%", 12, true},
		{"1 000", 1000, true},
		{"€99", 99, true},
		{"abc", 0, false},
		{"", 0, false},
		{"12abc", 0, false},
	}

	for _, tt := range tests {
		got, ok := TryNumeric(tt.input)
		if ok != tt.ok {
			t.Errorf("TryNumeric(%q) ok = %v, expected %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("TryNumeric(%q) = %v, expected %v", tt.input, got, tt.want)
		}
	}
}

func TestTryBoolean(t *testing.T) {
	trueTokens := []string{"true", "TRUE", "1", "yes", "Y", "on"}
	for _, tok := range trueTokens {
		if b, ok := TryBoolean(tok); !ok || !b {
			t.Errorf("TryBoolean(%q) = (%v, %v), expected (true, true)", tok, b, ok)
		}
	}

	falseTokens := []string{"false", "0", "no", "n", "OFF"}
	for _, tok := range falseTokens {
		if b, ok := TryBoolean(tok); !ok || b {
			t.Errorf("TryBoolean(%q) = (%v, %v), expected (false, true)", tok, b, ok)
		}
	}

	if _, ok := TryBoolean("maybe"); ok {
		t.Error("Expected TryBoolean to reject 'maybe'")
	}
}

func TestTryDatetime(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2024-01-15", true},
		{"2024-01-15T10:30:00Z", true},
		{"01/15/2024", true},
		{"15-Jan-2024", true},
		{"not a date", false},
		{"", false},
	}

	for _, tt := range tests {
		if _, ok := TryDatetime(tt.input, ""); ok != tt.ok {
			t.Errorf("TryDatetime(%q) ok = %v, expected %v", tt.input, ok, tt.ok)
		}
	}
}

func TestTryDatetimeDeclaredFormat(t *testing.T) {
	// Declared format wins over the auto-detection list
	got, ok := TryDatetime("15.01.2024", "02.01.2006")
	if !ok {
		t.Fatal("Expected declared format to parse")
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func stringColumn(name string, values ...string) table.Column {
	col := table.Column{Name: name}
	for _, v := range values {
		col.Values = append(col.Values, table.NewStringValue(v))
	}
	return col
}

func TestNumericRatio(t *testing.T) {
	col := stringColumn("mixed", "1", "2", "3", "abc")
	if got := NumericRatio(col); got != 0.75 {
		t.Errorf("Expected numeric ratio 0.75, got %v", got)
	}

	// Missing values are excluded from the denominator
	col.Values = append(col.Values, table.NewMissingValue())
	if got := NumericRatio(col); got != 0.75 {
		t.Errorf("Expected numeric ratio 0.75 with missing values, got %v", got)
	}

	if got := NumericRatio(table.Column{Name: "empty"}); got != 0 {
		t.Errorf("Expected numeric ratio 0 for empty column, got %v", got)
	}
}

func TestDatetimeRatioIgnoresNumbers(t *testing.T) {
	// Integer columns must not read as Unix epochs
	col := table.Column{Name: "n", Values: []table.Value{
		table.NewNumericValue(1700000000),
		table.NewNumericValue(1700000001),
	}}
	if got := DatetimeRatio(col); got != 0 {
		t.Errorf("Expected datetime ratio 0 for numeric column, got %v", got)
	}
}

func TestCardinalityRatio(t *testing.T) {
	col := stringColumn("status", "a", "b", "a", "a", "b", "c", "a", "b", "a", "c")
	if got := CardinalityRatio(col); got != 0.3 {
		t.Errorf("Expected cardinality ratio 0.3, got %v", got)
	}

	// Empty and all-missing columns never read as categorical
	if got := CardinalityRatio(table.Column{Name: "empty"}); got != 1 {
		t.Errorf("Expected cardinality ratio 1 for empty column, got %v", got)
	}
	allMissing := table.Column{Name: "gone", Values: []table.Value{table.NewMissingValue()}}
	if got := CardinalityRatio(allMissing); got != 1 {
		t.Errorf("Expected cardinality ratio 1 for all-missing column, got %v", got)
	}
}
