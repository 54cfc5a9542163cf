package ui

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"goeda/adapters/export"
	"goeda/domain/core"
	"goeda/domain/report"
	"goeda/domain/schema"
	apperrors "goeda/internal/errors"
)

// handleHealth reports liveness
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreateReport accepts a multipart upload with a "dataset" file and
// an optional "schema" file, runs the pipeline and returns the assembled
// document.
func (a *App) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		writeError(w, http.StatusBadRequest, apperrors.InvalidInput("expected multipart form with a dataset file"))
		return
	}

	file, header, err := r.FormFile("dataset")
	if err != nil {
		writeError(w, http.StatusBadRequest, apperrors.InvalidInput("dataset file is required"))
		return
	}
	defer file.Close()

	ds, err := a.service.LoadDataset(r.Context(), file, header.Filename)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var sch *schema.Schema
	if schemaFile, schemaHeader, err := r.FormFile("schema"); err == nil {
		defer schemaFile.Close()
		sch, err = a.service.LoadSchema(r.Context(), schemaFile, schemaHeader.Filename)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	doc, err := a.service.Analyze(r.Context(), ds, sch)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

// handleListReports returns persisted report summaries
func (a *App) handleListReports(w http.ResponseWriter, r *http.Request) {
	if a.repo == nil {
		writeError(w, http.StatusNotFound, apperrors.NotFound("report store"))
		return
	}
	summaries, err := a.repo.List(r.Context(), 50, 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

// handleGetReport returns a persisted report document
func (a *App) handleGetReport(w http.ResponseWriter, r *http.Request) {
	doc, ok := a.loadReport(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handleGetReportMarkdown renders a persisted report as Markdown
func (a *App) handleGetReportMarkdown(w http.ResponseWriter, r *http.Request) {
	doc, ok := a.loadReport(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(export.Render(doc)))
}

func (a *App) loadReport(w http.ResponseWriter, r *http.Request) (*report.Document, bool) {
	if a.repo == nil {
		writeError(w, http.StatusNotFound, apperrors.NotFound("report store"))
		return nil, false
	}

	id, err := core.ParseDocumentID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, apperrors.InvalidInput("invalid report id"))
		return nil, false
	}

	document, err := a.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			writeError(w, http.StatusNotFound, apperrors.NotFound("report"))
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	return document, true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  apperrors.GetCode(err),
	})
}
