package ports

import (
	"context"

	"goeda/domain/report"
)

// Exporter renders a report document to a persistent format on disk and
// returns the path it wrote.
type Exporter interface {
	Export(ctx context.Context, doc *report.Document, dir string) (string, error)
}
