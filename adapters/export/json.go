package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"goeda/domain/report"
)

// JSONExporter writes a report document as pretty-printed JSON
type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export writes the document to <dir>/report_<id>.json
func (e *JSONExporter) Export(_ context.Context, doc *report.Document, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("report_%s.json", doc.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
