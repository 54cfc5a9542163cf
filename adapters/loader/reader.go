package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"goeda/domain/table"

	"github.com/xuri/excelize/v2"
)

// Missing-value tokens treated as absent regardless of declared type
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"null": true,
	"nan":  true,
}

// FileReader loads CSV and XLSX files into raw string datasets. Type
// resolution is not its job; every non-missing cell comes back as a
// string value.
type FileReader struct{}

func NewFileReader() *FileReader {
	return &FileReader{}
}

// Load reads a dataset from disk, picking the format by extension
func (r *FileReader) Load(ctx context.Context, path string) (*table.Dataset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("dataset file not found: %s", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".xlsx":
		return r.loadExcel(path, name)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer f.Close()
		return r.LoadFrom(ctx, f, name)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

// LoadFrom reads CSV content from a reader
func (r *FileReader) LoadFrom(_ context.Context, src io.Reader, name string) (*table.Dataset, error) {
	rows, err := csv.NewReader(src).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	return r.buildDataset(rows, name)
}

func (r *FileReader) loadExcel(path, name string) (*table.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return r.buildDataset(rows, name)
}

// buildDataset converts header+data rows into a column-oriented dataset.
// Short rows are padded with missing values so all columns stay the same
// length.
func (r *FileReader) buildDataset(rows [][]string, name string) (*table.Dataset, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset must have a header row and at least one data row")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Name: h, Values: make([]table.Value, 0, len(rows)-1)}
	}

	for _, row := range rows[1:] {
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}
			columns[i].Values = append(columns[i].Values, cellValue(cell))
		}
	}

	return table.NewDataset(name, columns)
}

func cellValue(cell string) table.Value {
	if missingTokens[strings.ToLower(cell)] {
		return table.NewMissingValue()
	}
	return table.NewStringValue(cell)
}
