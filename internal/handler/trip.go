package handler

import (
	"net/http"
	"strconv"

	"github.com/pkordes/drivelog/internal/domain"
)

// listTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(
		queryInt(r, "page"),
		queryInt(r, "limit"),
	)

	trips, total, err := s.trips.List(r.Context(), params)
	if err != nil {
		writeError(w, err, "")
		return
	}
	if trips == nil {
		trips = []domain.Trip{}
	}

	writeJSON(w, http.StatusOK, tripListResponse{
		Data: trips,
		Pagination: paginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// getTrip handles GET /trips/{id}.
func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "trip not found")
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// markTripSeen handles POST /trips/{id}/seen.
// The viewing surface calls this after first displaying a trip; it is the
// only mutation a finalized trip ever receives.
func (s *Server) markTripSeen(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "trip not found")
	if !ok {
		return
	}

	if err := s.trips.MarkSeen(r.Context(), id); err != nil {
		writeError(w, err, "trip not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteTrip handles DELETE /trips/{id}.
func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "trip not found")
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeError(w, err, "trip not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---- response shapes -------------------------------------------------------

type tripListResponse struct {
	Data       []domain.Trip      `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// queryInt parses an optional integer query parameter, returning nil when
// the parameter is absent or not a number.
func queryInt(r *http.Request, key string) *int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}
