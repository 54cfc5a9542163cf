package ports

import (
	"context"

	"goeda/domain/core"
	"goeda/domain/report"
)

// ReportRepository defines the interface for report document storage
type ReportRepository interface {
	Save(ctx context.Context, doc *report.Document) error
	GetByID(ctx context.Context, id core.DocumentID) (*report.Document, error)
	List(ctx context.Context, limit, offset int) ([]ReportSummary, error)
}

// ReportSummary is the read model for report listings
type ReportSummary struct {
	ID        core.DocumentID `json:"id"`
	CreatedAt core.Timestamp  `json:"created_at"`
	Dataset   string          `json:"dataset"`
	Pages     int             `json:"pages"`
}
