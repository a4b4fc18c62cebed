// Package handler implements the HTTP handlers for the drivelog API.
// All handlers are methods on Server; they decode requests, call the service
// interfaces defined here, and map domain errors to HTTP statuses. Methods
// are split into resource-specific files (trip.go, report.go, etc.) but all
// share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/drivelog/internal/domain"
	"github.com/pkordes/drivelog/internal/recorder"
	"github.com/pkordes/drivelog/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	MarkSeen(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReportServicer defines the business operations the report handlers depend on.
type ReportServicer interface {
	Create(ctx context.Context, params service.ReportParams) (domain.Report, error)
	Get(ctx context.Context, id uuid.UUID, live bool) (domain.Report, error)
	List(ctx context.Context) ([]domain.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExportServicer defines the export assembly the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, reportID uuid.UUID) (domain.Report, []domain.ExportRow, error)
}

// RecorderController is the live recording session the recorder handlers
// drive. *recorder.Recorder satisfies it; the handler never sees the state
// machine's internals, only its lifecycle operations and snapshot.
type RecorderController interface {
	Start() error
	Pause() error
	Resume() error
	Stop(ctx context.Context) (domain.Trip, error)
	Observe(fix domain.Fix)
	Snapshot() recorder.Snapshot
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	trips    TripServicer
	reports  ReportServicer
	exporter ExportServicer
	rec      RecorderController
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, reports ReportServicer, exporter ExportServicer, rec RecorderController) *Server {
	return &Server{trips: trips, reports: reports, exporter: exporter, rec: rec}
}

// Routes returns the router for the full API surface.
// Mount it at "/" in main.go.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.listTrips)
		r.Get("/{id}", s.getTrip)
		r.Delete("/{id}", s.deleteTrip)
		r.Post("/{id}/seen", s.markTripSeen)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Post("/", s.createReport)
		r.Get("/", s.listReports)
		r.Get("/{id}", s.getReport)
		r.Delete("/{id}", s.deleteReport)
		r.Get("/{id}/export", s.exportReport)
	})

	r.Route("/recorder", func(r chi.Router) {
		r.Get("/", s.getRecorder)
		r.Post("/start", s.startRecorder)
		r.Post("/pause", s.pauseRecorder)
		r.Post("/resume", s.resumeRecorder)
		r.Post("/stop", s.stopRecorder)
		r.Post("/fixes", s.observeFix)
	})

	return r
}

// getHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
