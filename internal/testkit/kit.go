package testkit

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"goeda/domain/core"
	"goeda/domain/report"
	"goeda/domain/table"
	"goeda/ports"
)

// SurveyGeneratorConfig configures the synthetic survey generator
type SurveyGeneratorConfig struct {
	RecordCount int       `json:"record_count"`
	MissingRate float64   `json:"missing_rate"`
	StartDate   time.Time `json:"start_date"`
	Seed        int64     `json:"seed"`
}

// DefaultSurveyConfig returns sensible defaults for survey data generation
func DefaultSurveyConfig() SurveyGeneratorConfig {
	return SurveyGeneratorConfig{
		RecordCount: 200,
		MissingRate: 0.05,
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Seed:        42,
	}
}

// SurveyDataGenerator produces deterministic synthetic survey datasets with
// one column of each semantic type, for pipeline and adapter tests.
type SurveyDataGenerator struct {
	config SurveyGeneratorConfig
	rng    *rand.Rand
}

// NewSurveyDataGenerator creates a new survey data generator
func NewSurveyDataGenerator(config SurveyGeneratorConfig) *SurveyDataGenerator {
	return &SurveyDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var surveyStatuses = []string{"enrolled", "active", "withdrawn", "completed"}

var surveyComments = []string{
	"patient reported mild side effects",
	"no issues during follow up visit",
	"rescheduled due to travel",
	"requested additional information about the study",
	"missed previous appointment",
}

// Generate builds the synthetic dataset. Every cell is a raw string so the
// result exercises the same path as a freshly loaded file.
func (g *SurveyDataGenerator) Generate() (*table.Dataset, error) {
	n := g.config.RecordCount
	if n <= 0 {
		return nil, fmt.Errorf("record count must be positive")
	}

	ids := make([]table.Value, n)
	ages := make([]table.Value, n)
	statuses := make([]table.Value, n)
	enrolled := make([]table.Value, n)
	comments := make([]table.Value, n)
	consented := make([]table.Value, n)

	for i := 0; i < n; i++ {
		ids[i] = table.NewStringValue(fmt.Sprintf("P%04d", i+1))
		ages[i] = g.maybeMissing(fmt.Sprintf("%d", 18+g.rng.Intn(70)))
		statuses[i] = g.maybeMissing(surveyStatuses[g.rng.Intn(len(surveyStatuses))])
		day := g.config.StartDate.AddDate(0, 0, g.rng.Intn(365))
		enrolled[i] = g.maybeMissing(day.Format("2006-01-02"))
		// Visit suffix keeps cardinality high so the column reads as free text
		comment := fmt.Sprintf("%s during visit %d", surveyComments[g.rng.Intn(len(surveyComments))], i+1)
		comments[i] = g.maybeMissing(comment)
		consented[i] = g.maybeMissing(fmt.Sprintf("%t", g.rng.Float64() < 0.9))
	}

	return table.NewDataset("synthetic_survey", []table.Column{
		{Name: "participant_id", Values: ids},
		{Name: "age", Values: ages},
		{Name: "status", Values: statuses},
		{Name: "enrolled_on", Values: enrolled},
		{Name: "comments", Values: comments},
		{Name: "consented", Values: consented},
	})
}

func (g *SurveyDataGenerator) maybeMissing(s string) table.Value {
	if g.rng.Float64() < g.config.MissingRate {
		return table.NewMissingValue()
	}
	return table.NewStringValue(s)
}

// InMemoryReportRepository is a map-backed ReportRepository for tests and
// local runs without a database.
type InMemoryReportRepository struct {
	mu   sync.RWMutex
	docs map[core.DocumentID]*report.Document
}

func NewInMemoryReportRepository() *InMemoryReportRepository {
	return &InMemoryReportRepository{docs: make(map[core.DocumentID]*report.Document)}
}

func (r *InMemoryReportRepository) Save(_ context.Context, doc *report.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = doc
	return nil
}

func (r *InMemoryReportRepository) GetByID(_ context.Context, id core.DocumentID) (*report.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("report %s: %w", id, core.ErrNotFound)
	}
	return doc, nil
}

func (r *InMemoryReportRepository) List(_ context.Context, limit, offset int) ([]ports.ReportSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	summaries := make([]ports.ReportSummary, 0, len(r.docs))
	for _, doc := range r.docs {
		dataset := ""
		if len(doc.Pages) > 0 && doc.Pages[0].Title != nil {
			dataset = doc.Pages[0].Title.Dataset
		}
		summaries = append(summaries, ports.ReportSummary{
			ID:        doc.ID,
			CreatedAt: doc.CreatedAt,
			Dataset:   dataset,
			Pages:     len(doc.Pages),
		})
	}
	return summaries, nil
}
