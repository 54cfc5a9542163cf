package eda

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"goeda/domain/report"
	"goeda/domain/schema"
	"goeda/domain/table"
	"goeda/internal"
	"goeda/internal/analyze"
	"goeda/internal/classify"
	"goeda/internal/config"

	"golang.org/x/sync/semaphore"
)

// Orchestrator fans column analysis out over a bounded worker pool and
// collects results back in dataset column order.
type Orchestrator struct {
	cfg        config.AnalysisConfig
	classifier *classify.Classifier
	log        *internal.Logger
	sem        *semaphore.Weighted
}

func NewOrchestrator(cfg config.AnalysisConfig, logger *internal.Logger) *Orchestrator {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	workers := cfg.MaxWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Orchestrator{
		cfg:        cfg,
		classifier: classify.NewClassifier(cfg),
		log:        logger,
		sem:        semaphore.NewWeighted(int64(workers)),
	}
}

// Explore analyzes every column of the dataset concurrently. Results come
// back in the dataset's column order regardless of completion order. A
// panic or failure in one column's analyzer yields a missing-variant
// result for that column and never disturbs the others.
func (o *Orchestrator) Explore(ctx context.Context, ds *table.Dataset, enforcement *report.EnforcementReport) ([]report.AnalysisResult, error) {
	if ds == nil || len(ds.Columns) == 0 {
		return nil, fmt.Errorf("explore: empty dataset")
	}

	results := make([]report.AnalysisResult, len(ds.Columns))
	var wg sync.WaitGroup

	for i, col := range ds.Columns {
		if err := o.sem.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("explore: %w", err)
		}
		wg.Add(1)
		go func(idx int, col table.Column) {
			defer wg.Done()
			defer o.sem.Release(1)
			results[idx] = o.analyzeColumn(col, enforcement)
		}(i, col)
	}

	wg.Wait()
	return results, nil
}

// AnalyzeColumn runs the pipeline for a single named column.
func (o *Orchestrator) AnalyzeColumn(ds *table.Dataset, enforcement *report.EnforcementReport, name string) (report.AnalysisResult, error) {
	col, err := ds.Column(name)
	if err != nil {
		return report.AnalysisResult{}, err
	}
	return o.analyzeColumn(col, enforcement), nil
}

func (o *Orchestrator) analyzeColumn(col table.Column, enforcement *report.EnforcementReport) (result report.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Error("analyzer panic on column %s: %v", col.Name, r)
			result = analyze.Failure(col, fmt.Errorf("panic: %v", r))
		}
	}()

	variant := o.classifier.Classify(col, o.resolvedType(col.Name, enforcement))
	o.log.Debug("column %s classified as %s", col.Name, variant)
	return analyze.Run(col, variant, o.cfg)
}

// resolvedType reads the type the enforcement pass settled on for a
// column; empty when the column never went through enforcement.
func (o *Orchestrator) resolvedType(name string, enforcement *report.EnforcementReport) schema.FieldType {
	if enforcement == nil {
		return ""
	}
	outcome, ok := enforcement.Outcome(name)
	if !ok {
		return ""
	}
	switch outcome.Status {
	case report.StatusCastOK, report.StatusInferred:
		return outcome.Resolved
	case report.StatusCastFailed:
		// The column is all-missing after a failed cast; the classifier
		// reads the missing variant off the data itself.
		return ""
	default:
		return ""
	}
}
