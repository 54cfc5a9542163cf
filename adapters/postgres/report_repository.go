package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"goeda/domain/core"
	"goeda/domain/report"
	"goeda/ports"

	"github.com/jmoiron/sqlx"
)

// reportRepository implements the ReportRepository interface
type reportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sqlx.DB) ports.ReportRepository {
	return &reportRepository{db: db}
}

// Migrate creates the reports table if it does not exist
func Migrate(ctx context.Context, db *sqlx.DB) error {
	query := `CREATE TABLE IF NOT EXISTS eda_reports (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL,
		dataset TEXT NOT NULL,
		pages INT NOT NULL,
		document JSONB NOT NULL
	)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to migrate eda_reports: %w", err)
	}
	return nil
}

// Save inserts a report document
func (r *reportRepository) Save(ctx context.Context, doc *report.Document) error {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal report document: %w", err)
	}

	dataset := ""
	if len(doc.Pages) > 0 && doc.Pages[0].Title != nil {
		dataset = doc.Pages[0].Title.Dataset
	}

	query := `INSERT INTO eda_reports (id, created_at, dataset, pages, document)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, pages = EXCLUDED.pages`

	_, err = r.db.ExecContext(ctx, query,
		doc.ID.String(), doc.CreatedAt.Time(), dataset, len(doc.Pages), docJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetByID retrieves a report document by its ID
func (r *reportRepository) GetByID(ctx context.Context, id core.DocumentID) (*report.Document, error) {
	query := `SELECT document FROM eda_reports WHERE id = $1`

	var docJSON []byte
	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(&docJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("report %s: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var doc report.Document
	if err := json.Unmarshal(docJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report document: %w", err)
	}
	return &doc, nil
}

// List returns report summaries, newest first
func (r *reportRepository) List(ctx context.Context, limit, offset int) ([]ports.ReportSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, created_at, dataset, pages FROM eda_reports
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	summaries := []ports.ReportSummary{}
	for rows.Next() {
		var s ports.ReportSummary
		var id string
		var createdAt sql.NullTime
		if err := rows.Scan(&id, &createdAt, &s.Dataset, &s.Pages); err != nil {
			return nil, fmt.Errorf("failed to scan report summary: %w", err)
		}
		docID, err := core.ParseDocumentID(id)
		if err != nil {
			return nil, fmt.Errorf("failed to parse report id: %w", err)
		}
		s.ID = docID
		if createdAt.Valid {
			s.CreatedAt = core.NewTimestamp(createdAt.Time)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
