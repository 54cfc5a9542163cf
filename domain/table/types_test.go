package table

import (
	"errors"
	"testing"

	"goeda/domain/core"
)

func TestNewDatasetValidation(t *testing.T) {
	if _, err := NewDataset("d", nil); !errors.Is(err, core.ErrEmptyDataset) {
		t.Errorf("Expected ErrEmptyDataset for no columns, got %v", err)
	}

	ragged := []Column{
		{Name: "a", Values: []Value{NewNumericValue(1), NewNumericValue(2)}},
		{Name: "b", Values: []Value{NewNumericValue(1)}},
	}
	if _, err := NewDataset("d", ragged); !errors.Is(err, core.ErrRaggedDataset) {
		t.Errorf("Expected ErrRaggedDataset for unequal columns, got %v", err)
	}
}

func TestColumnLookup(t *testing.T) {
	ds, err := NewDataset("d", []Column{
		{Name: "a", Values: []Value{NewNumericValue(1)}},
	})
	if err != nil {
		t.Fatalf("NewDataset failed: %v", err)
	}

	if _, err := ds.Column("a"); err != nil {
		t.Errorf("Expected column a to resolve, got %v", err)
	}
	if _, err := ds.Column("z"); !errors.Is(err, core.ErrUnknownColumn) {
		t.Errorf("Expected ErrUnknownColumn, got %v", err)
	}
	if !ds.HasColumn("a") || ds.HasColumn("z") {
		t.Error("HasColumn mismatch")
	}
}

func TestValueConstructors(t *testing.T) {
	if v := NewStringValue(""); !v.IsMissing {
		t.Error("Expected empty string to construct a missing value")
	}
	if v := NewStringValue("x"); v.IsMissing || !v.IsString() {
		t.Error("Expected a live string value")
	}
	if v := NewNumericValue(3.5); !v.IsNumeric() || v.AsFloat64() != 3.5 {
		t.Error("Expected a numeric value of 3.5")
	}
	if v := NewMissingValue(); v.String() != "<missing>" {
		t.Errorf("Expected <missing>, got %s", v.String())
	}
}

func TestColumnMissingAccounting(t *testing.T) {
	col := Column{Name: "c", Values: []Value{
		NewStringValue("x"),
		NewMissingValue(),
		NewMissingValue(),
	}}
	if col.Len() != 3 {
		t.Errorf("Expected length 3, got %d", col.Len())
	}
	if col.MissingCount() != 2 {
		t.Errorf("Expected 2 missing, got %d", col.MissingCount())
	}
	if col.AllMissing() {
		t.Error("Expected not all missing")
	}
	if len(col.NonMissing()) != 1 {
		t.Errorf("Expected 1 non-missing value, got %d", len(col.NonMissing()))
	}
}

func TestFingerprintChangesWithShape(t *testing.T) {
	a, _ := NewDataset("d", []Column{{Name: "a", Values: []Value{NewNumericValue(1)}}})
	b, _ := NewDataset("d", []Column{{Name: "b", Values: []Value{NewNumericValue(1)}}})
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("Expected different fingerprints for different column names")
	}
}
