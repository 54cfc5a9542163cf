package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `participant_id,age,status
P001,34,active
P002,NA,withdrawn
P003,51,
`

func TestLoadFromCSV(t *testing.T) {
	ds, err := NewFileReader().LoadFrom(context.Background(), strings.NewReader(sampleCSV), "sample")
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if ds.Name != "sample" {
		t.Errorf("Expected dataset name sample, got %s", ds.Name)
	}
	if len(ds.Columns) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(ds.Columns))
	}
	if ds.Rows() != 3 {
		t.Errorf("Expected 3 rows, got %d", ds.Rows())
	}

	age, err := ds.Column("age")
	if err != nil {
		t.Fatalf("Column lookup failed: %v", err)
	}
	if !age.Values[1].IsMissing {
		t.Error("Expected NA to load as missing")
	}
	if age.Values[0].String() != "34" {
		t.Errorf("Expected raw string 34, got %s", age.Values[0].String())
	}

	status, _ := ds.Column("status")
	if !status.Values[2].IsMissing {
		t.Error("Expected empty cell to load as missing")
	}
}

func TestLoadCSVFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "survey.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	ds, err := NewFileReader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ds.Name != "survey" {
		t.Errorf("Expected dataset named survey, got %s", ds.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewFileReader().Load(context.Background(), "/no/such/file.csv"); err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.parquet")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := NewFileReader().Load(context.Background(), path); err == nil {
		t.Fatal("Expected an error for an unsupported extension")
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	if _, err := NewFileReader().LoadFrom(context.Background(), strings.NewReader("a,b\n"), "empty"); err == nil {
		t.Fatal("Expected an error for a header-only file")
	}
}

func TestMissingTokens(t *testing.T) {
	for _, token := range []string{"", "NA", "n/a", "null", "NaN"} {
		if v := cellValue(token); !v.IsMissing {
			t.Errorf("Expected %q to read as missing", token)
		}
	}
	if v := cellValue("navy"); v.IsMissing {
		t.Error("Expected 'navy' to survive as a value")
	}
}
