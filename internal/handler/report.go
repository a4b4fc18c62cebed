package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkordes/drivelog/internal/domain"
	"github.com/pkordes/drivelog/internal/service"
)

// createReportRequest is the body of POST /reports.
// kind selects which of the remaining fields are read:
//
//	monthly: year, month
//	yearly:  year
//	custom:  start, end — "2006-01-02" dates covering whole days
type createReportRequest struct {
	Kind  string `json:"kind"`
	Year  int    `json:"year,omitempty"`
	Month int    `json:"month,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// createReport handles POST /reports.
func (s *Server) createReport(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "request body must be valid JSON")
		return
	}

	params, err := requestToParams(req)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	created, err := s.reports.Create(r.Context(), params)
	if err != nil {
		writeError(w, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// listReports handles GET /reports.
func (s *Server) listReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.reports.List(r.Context())
	if err != nil {
		writeError(w, err, "")
		return
	}
	if reports == nil {
		reports = []domain.Report{}
	}
	writeJSON(w, http.StatusOK, reports)
}

// getReport handles GET /reports/{id}.
// With ?live=true the totals are recomputed from the current trip set over
// the stored range instead of served from the snapshot.
func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "report not found")
	if !ok {
		return
	}

	live := r.URL.Query().Get("live") == "true"
	rep, err := s.reports.Get(r.Context(), id, live)
	if err != nil {
		writeError(w, err, "report not found")
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

// deleteReport handles DELETE /reports/{id}.
func (s *Server) deleteReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "report not found")
	if !ok {
		return
	}

	if err := s.reports.Delete(r.Context(), id); err != nil {
		writeError(w, err, "report not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requestToParams maps the request body to service params, parsing and
// normalizing custom date ranges.
//
// This is the one place day-boundary normalization happens: a custom range
// given as whole dates is widened to [start 00:00, the day after end 00:00),
// so "2026-05-10".."2026-05-20" covers the entire 20th. Everything past this
// point works in resolved instants only, so report creation and later
// display cannot normalize differently.
func requestToParams(req createReportRequest) (service.ReportParams, error) {
	params := service.ReportParams{
		Kind:  domain.PeriodKind(req.Kind),
		Year:  req.Year,
		Month: time.Month(req.Month),
	}

	if params.Kind != domain.PeriodCustom {
		return params, nil
	}

	if req.Start != "" {
		start, err := time.Parse("2006-01-02", req.Start)
		if err != nil {
			return service.ReportParams{}, errBadDate("start", req.Start)
		}
		params.Start = start
	}
	if req.End != "" {
		end, err := time.Parse("2006-01-02", req.End)
		if err != nil {
			return service.ReportParams{}, errBadDate("end", req.End)
		}
		params.End = end.AddDate(0, 0, 1) // whole-day inclusive
	}
	return params, nil
}

type badDateError struct {
	field, value string
}

func errBadDate(field, value string) error {
	return badDateError{field: field, value: value}
}

func (e badDateError) Error() string {
	return e.field + " must be a date formatted 2006-01-02, got " + e.value
}
