// Package handler — export.go implements GET /reports/{id}/export.
// Returns the report totals and one row per contributing trip.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/pkordes/drivelog/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "date", "driving_time_seconds", "total_distance_km", "fix_count",
}

// exportReport handles GET /reports/{id}/export.
func (s *Server) exportReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "report not found")
	if !ok {
		return
	}

	rep, rows, err := s.exporter.Export(r.Context(), id)
	if err != nil {
		writeError(w, err, "report not found")
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSVExport(w, rows)
		return
	}

	if rows == nil {
		rows = []domain.ExportRow{}
	}
	writeJSON(w, http.StatusOK, exportResponse{
		Report: rep,
		Trips:  rowsToJSON(rows),
	})
}

// writeCSVExport encodes the trip rows as CSV with a header line.
func writeCSVExport(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// csv.Writer writes into the buffer; errors surface on Flush only.
	//nolint:errcheck
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write([]string{
			row.TripID,
			row.Date,
			strconv.FormatInt(row.DrivingTimeSeconds, 10),
			strconv.FormatFloat(row.TotalDistanceKm, 'f', -1, 64),
			strconv.Itoa(row.FixCount),
		})
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// ---- response shapes -------------------------------------------------------

type exportResponse struct {
	Report domain.Report   `json:"report"`
	Trips  []exportRowJSON `json:"trips"`
}

type exportRowJSON struct {
	TripID             string  `json:"trip_id"`
	Date               string  `json:"date"`
	DrivingTimeSeconds int64   `json:"driving_time_seconds"`
	TotalDistanceKm    float64 `json:"total_distance_km"`
	FixCount           int     `json:"fix_count"`
}

func rowsToJSON(rows []domain.ExportRow) []exportRowJSON {
	out := make([]exportRowJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, exportRowJSON{
			TripID:             r.TripID,
			Date:               r.Date,
			DrivingTimeSeconds: r.DrivingTimeSeconds,
			TotalDistanceKm:    r.TotalDistanceKm,
			FixCount:           r.FixCount,
		})
	}
	return out
}
