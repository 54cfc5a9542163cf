package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"goeda/adapters/loader"
	"goeda/adapters/schemafile"
	"goeda/app"
	"goeda/domain/report"
	"goeda/internal/config"
	"goeda/internal/testkit"
	"goeda/ports"
)

const sampleCSV = `age,status
34,active
51,withdrawn
28,active
NA,active
`

const sampleSchema = `{"age": {"type": "numeric"}, "status": {"type": "categorical"}}`

func newTestApp(repo ports.ReportRepository) *App {
	service := app.NewEDAService(
		config.DefaultAnalysisConfig(),
		loader.NewFileReader(),
		schemafile.NewLoader(),
		repo,
		nil,
	)
	return NewApp(service, repo, nil)
}

func multipartUpload(t *testing.T, csv, schema string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("dataset", "survey.csv")
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	part.Write([]byte(csv))

	if schema != "" {
		sp, err := writer.CreateFormFile("schema", "schema.json")
		if err != nil {
			t.Fatalf("CreateFormFile failed: %v", err)
		}
		sp.Write([]byte(schema))
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestHealthz(t *testing.T) {
	a := newTestApp(nil)
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
}

func TestCreateReport(t *testing.T) {
	repo := testkit.NewInMemoryReportRepository()
	a := newTestApp(repo)

	body, contentType := multipartUpload(t, sampleCSV, sampleSchema)
	req := httptest.NewRequest(http.MethodPost, "/api/reports", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	a.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var doc report.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("Response is not a document: %v", err)
	}
	// Title page, schema page and one page per column
	if len(doc.Pages) != 4 {
		t.Errorf("Expected 4 pages, got %d", len(doc.Pages))
	}

	// The report was persisted and is retrievable
	stored, err := repo.GetByID(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("Expected stored report: %v", err)
	}
	if stored.ID != doc.ID {
		t.Errorf("Stored ID mismatch: %s vs %s", stored.ID, doc.ID)
	}
}

func TestCreateReportWithoutSchema(t *testing.T) {
	a := newTestApp(nil)

	body, contentType := multipartUpload(t, sampleCSV, "")
	req := httptest.NewRequest(http.MethodPost, "/api/reports", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	a.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateReportMissingDataset(t *testing.T) {
	a := newTestApp(nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/reports", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	a.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestGetReportNotFound(t *testing.T) {
	a := newTestApp(testkit.NewInMemoryReportRepository())
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports/does-not-exist", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
}

func TestGetReportMarkdown(t *testing.T) {
	repo := testkit.NewInMemoryReportRepository()
	a := newTestApp(repo)

	body, contentType := multipartUpload(t, sampleCSV, "")
	req := httptest.NewRequest(http.MethodPost, "/api/reports", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}

	var doc report.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("Response is not a document: %v", err)
	}

	rec = httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports/"+doc.ID.String()+"/markdown", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "# Exploratory Data Analysis") {
		t.Error("Expected a markdown report body")
	}
}

func TestListReportsWithoutStore(t *testing.T) {
	a := newTestApp(nil)
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 without a report store, got %d", rec.Code)
	}
}
