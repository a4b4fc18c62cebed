// Package geo provides great-circle distance math for recorded paths.
// Distances are computed on the s2 sphere with Earth's mean radius, which
// matches the haversine formula to well below GPS accuracy.
package geo

import (
	"github.com/golang/geo/s2"

	"github.com/pkordes/drivelog/internal/domain"
)

// earthRadiusKm is Earth's mean radius.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two fixes in kilometers.
func DistanceKm(a, b domain.Fix) float64 {
	p := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	q := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p.Distance(q).Radians() * earthRadiusKm
}

// Accumulator converts a stream of fixes into a cumulative distance,
// incrementally. The first fix observed after construction, Reset, or
// ClearAnchor contributes a zero delta — it only anchors the next segment.
//
// Every subsequent fix contributes the full segment distance, including
// sub-meter jitter while stationary; the accumulator does no filtering.
//
// Accumulator is not safe for concurrent use. The recorder owns it and
// serializes access under its own lock.
type Accumulator struct {
	anchor   domain.Fix
	anchored bool
	totalKm  float64
}

// Observe folds one fix into the running total and returns the distance
// delta it contributed. The delta is zero when no anchor is set.
func (a *Accumulator) Observe(fix domain.Fix) float64 {
	if !a.anchored {
		a.anchor = fix
		a.anchored = true
		return 0
	}
	delta := DistanceKm(a.anchor, fix)
	a.totalKm += delta
	a.anchor = fix
	return delta
}

// ClearAnchor marks the previous fix stale without touching the total.
// The recorder calls this on resume so the first fix after a pause never
// contributes a spurious segment spanning the pause gap.
func (a *Accumulator) ClearAnchor() {
	a.anchored = false
}

// Reset returns the accumulator to its initial state: no anchor, zero total.
func (a *Accumulator) Reset() {
	a.anchored = false
	a.totalKm = 0
}

// TotalKm returns the cumulative distance observed so far.
func (a *Accumulator) TotalKm() float64 {
	return a.totalKm
}
