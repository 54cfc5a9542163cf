package app

import (
	"context"
	"fmt"
	"io"

	"goeda/domain/report"
	"goeda/domain/schema"
	"goeda/domain/table"
	"goeda/internal"
	"goeda/internal/assemble"
	"goeda/internal/config"
	"goeda/internal/eda"
	"goeda/internal/enforce"
	apperrors "goeda/internal/errors"
	"goeda/ports"
)

// EDAService composes the full pipeline: load, enforce, explore, assemble.
// The CLI and the HTTP surface both run reports through it.
type EDAService struct {
	cfg          config.AnalysisConfig
	loader       ports.DatasetLoader
	schemaLoader ports.SchemaLoader
	enforcer     *enforce.Enforcer
	orchestrator *eda.Orchestrator
	repo         ports.ReportRepository
	log          *internal.Logger
}

func NewEDAService(
	cfg config.AnalysisConfig,
	loader ports.DatasetLoader,
	schemaLoader ports.SchemaLoader,
	repo ports.ReportRepository,
	logger *internal.Logger,
) *EDAService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &EDAService{
		cfg:          cfg,
		loader:       loader,
		schemaLoader: schemaLoader,
		enforcer:     enforce.NewEnforcer(cfg, logger),
		orchestrator: eda.NewOrchestrator(cfg, logger),
		repo:         repo,
		log:          logger,
	}
}

// RunReport loads a dataset (and optionally a schema file), runs the
// pipeline and returns the assembled document. An empty schemaPath means
// every column's type is inferred.
func (s *EDAService) RunReport(ctx context.Context, datasetPath, schemaPath string) (*report.Document, error) {
	ds, err := s.loader.Load(ctx, datasetPath)
	if err != nil {
		return nil, apperrors.LoadError(fmt.Sprintf("load dataset %s", datasetPath), err)
	}
	s.log.Info("loaded dataset %s: %d rows, %d columns", ds.Name, ds.Rows(), len(ds.Columns))

	var sch *schema.Schema
	if schemaPath != "" {
		sch, err = s.schemaLoader.Load(ctx, schemaPath)
		if err != nil {
			return nil, apperrors.LoadError(fmt.Sprintf("load schema %s", schemaPath), err)
		}
	}

	return s.Analyze(ctx, ds, sch)
}

// LoadDataset reads a dataset from an already open stream, for uploads
func (s *EDAService) LoadDataset(ctx context.Context, r io.Reader, name string) (*table.Dataset, error) {
	ds, err := s.loader.LoadFrom(ctx, r, name)
	if err != nil {
		return nil, apperrors.LoadError(fmt.Sprintf("load dataset %s", name), err)
	}
	return ds, nil
}

// LoadSchema reads a schema declaration from an already open stream
func (s *EDAService) LoadSchema(ctx context.Context, r io.Reader, source string) (*schema.Schema, error) {
	sch, err := s.schemaLoader.LoadFrom(ctx, r, source)
	if err != nil {
		return nil, apperrors.LoadError(fmt.Sprintf("load schema %s", source), err)
	}
	return sch, nil
}

// Analyze runs enforcement, exploration and assembly over an already
// loaded dataset. When repo persistence is configured the document is
// saved before returning; a save failure fails the call, the document is
// complete either way.
func (s *EDAService) Analyze(ctx context.Context, ds *table.Dataset, sch *schema.Schema) (*report.Document, error) {
	cast, enforcement, err := s.enforcer.Enforce(ds, sch)
	if err != nil {
		return nil, err
	}
	for _, outcome := range enforcement.Outcomes {
		s.log.Debug("enforce %s: %s -> %s (%s)", outcome.Column, outcome.Declared, outcome.Resolved, outcome.Status)
	}

	results, err := s.orchestrator.Explore(ctx, cast, enforcement)
	if err != nil {
		return nil, err
	}

	doc := assemble.Assemble(cast, enforcement, results)
	s.log.Info("assembled report %s: %d pages", doc.ID, len(doc.Pages))

	if s.repo != nil {
		if err := s.repo.Save(ctx, doc); err != nil {
			return nil, apperrors.DatabaseError("save report", err)
		}
	}
	return doc, nil
}
