package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkordes/drivelog/internal/domain"
)

// getRecorder handles GET /recorder.
// Returns the live session's state, elapsed seconds, distance, and fix count
// for the observing UI to render.
func (s *Server) getRecorder(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.rec.Snapshot())
}

// startRecorder handles POST /recorder/start.
func (s *Server) startRecorder(w http.ResponseWriter, _ *http.Request) {
	if err := s.rec.Start(); err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, s.rec.Snapshot())
}

// pauseRecorder handles POST /recorder/pause.
func (s *Server) pauseRecorder(w http.ResponseWriter, _ *http.Request) {
	if err := s.rec.Pause(); err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, s.rec.Snapshot())
}

// resumeRecorder handles POST /recorder/resume.
func (s *Server) resumeRecorder(w http.ResponseWriter, _ *http.Request) {
	if err := s.rec.Resume(); err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, s.rec.Snapshot())
}

// stopRecorder handles POST /recorder/stop.
// Finalizes the live session into a trip and returns it.
func (s *Server) stopRecorder(w http.ResponseWriter, r *http.Request) {
	trip, err := s.rec.Stop(r.Context())
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

// observeFix handles POST /recorder/fixes.
// Accepts one position sample from the GPS source. Fixes arriving while the
// recorder is not recording are dropped by the recorder itself; delivery
// always succeeds.
func (s *Server) observeFix(w http.ResponseWriter, r *http.Request) {
	var fix domain.Fix
	if err := json.NewDecoder(r.Body).Decode(&fix); err != nil {
		badRequest(w, "request body must be a JSON fix with lat and lng")
		return
	}
	if fix.Latitude < -90 || fix.Latitude > 90 || fix.Longitude < -180 || fix.Longitude > 180 {
		badRequest(w, "fix coordinates out of range")
		return
	}

	s.rec.Observe(fix)
	w.WriteHeader(http.StatusAccepted)
}
