// Package domain contains the core data types for the drivelog application.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (geo, recorder, report, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Fix is one instantaneous position sample from the GPS source.
// Immutable once captured.
type Fix struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Trip is one completed recording session. It is created only by the trip
// recorder when a recording is stopped, and is immutable afterwards except
// for IsNew, which the viewing surface clears after first display.
type Trip struct {
	ID uuid.UUID `json:"id"`

	// Date is the instant recording started, not the instant it stopped.
	Date time.Time `json:"date"`

	// DrivingTimeSeconds counts whole seconds spent in the Recording state.
	// Paused intervals are excluded. Never negative.
	DrivingTimeSeconds int64 `json:"driving_time_seconds"`

	// TotalDistanceKm is the accumulated great-circle distance over the
	// recorded path. Never negative.
	TotalDistanceKm float64 `json:"total_distance_km"`

	// Path holds every fix observed while recording, in capture order.
	// May be empty. A trip whose persisted path bytes fail to decode is
	// served with an empty path.
	Path []Fix `json:"path,omitempty"`

	// IsNew is true until the viewing surface acknowledges the trip.
	IsNew bool `json:"is_new"`

	CreatedAt time.Time `json:"created_at"`
}
