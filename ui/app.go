package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"goeda/app"
	"goeda/internal"
	"goeda/ports"
)

// App is the HTTP surface: upload a dataset, get back a report
type App struct {
	router  *chi.Mux
	service *app.EDAService
	repo    ports.ReportRepository
	log     *internal.Logger
}

// Config holds HTTP application configuration
type Config struct {
	Port string
}

// NewApp wires the router around the analysis service. repo may be nil
// when no database is configured; report lookup endpoints then return 404.
func NewApp(service *app.EDAService, repo ports.ReportRepository, logger *internal.Logger) *App {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}

	a := &App{
		router:  chi.NewRouter(),
		service: service,
		repo:    repo,
		log:     logger,
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)

	a.router.Post("/api/reports", a.handleCreateReport)
	a.router.Get("/api/reports", a.handleListReports)
	a.router.Get("/api/reports/{id}", a.handleGetReport)
	a.router.Get("/api/reports/{id}/markdown", a.handleGetReportMarkdown)
}

// Router exposes the configured handler for serving and tests
func (a *App) Router() http.Handler {
	return a.router
}

// Serve starts the HTTP server on the configured port
func (a *App) Serve(cfg Config) error {
	addr := ":" + cfg.Port
	a.log.Info("listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
