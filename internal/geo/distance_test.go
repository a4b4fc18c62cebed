package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/drivelog/internal/domain"
	"github.com/pkordes/drivelog/internal/geo"
)

var (
	paris  = domain.Fix{Latitude: 48.8566, Longitude: 2.3522}
	london = domain.Fix{Latitude: 51.5074, Longitude: -0.1278}
	berlin = domain.Fix{Latitude: 52.5200, Longitude: 13.4050}
)

func TestDistanceKm_KnownCityPairs(t *testing.T) {
	tests := []struct {
		name   string
		a, b   domain.Fix
		wantKm float64
	}{
		{"paris-london", paris, london, 343.6},
		{"paris-berlin", paris, berlin, 877.5},
		{"same point", paris, paris, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geo.DistanceKm(tt.a, tt.b)
			// 0.5% tolerance covers the spherical-Earth approximation.
			assert.InDelta(t, tt.wantKm, got, tt.wantKm*0.005+0.001)
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	assert.InDelta(t, geo.DistanceKm(paris, london), geo.DistanceKm(london, paris), 1e-9)
}

func TestAccumulator_FirstFixContributesZero(t *testing.T) {
	var acc geo.Accumulator

	delta := acc.Observe(paris)

	assert.Zero(t, delta)
	assert.Zero(t, acc.TotalKm())
}

func TestAccumulator_SumsPairwiseSegments(t *testing.T) {
	var acc geo.Accumulator

	acc.Observe(paris)
	acc.Observe(london)
	acc.Observe(berlin)

	want := geo.DistanceKm(paris, london) + geo.DistanceKm(london, berlin)
	require.InDelta(t, want, acc.TotalKm(), 1e-9)
}

func TestAccumulator_ObserveReturnsSegmentDelta(t *testing.T) {
	var acc geo.Accumulator

	acc.Observe(paris)
	delta := acc.Observe(london)

	assert.InDelta(t, geo.DistanceKm(paris, london), delta, 1e-9)
}

func TestAccumulator_ClearAnchor_NextFixIsFree(t *testing.T) {
	var acc geo.Accumulator

	acc.Observe(paris)
	acc.Observe(london)
	before := acc.TotalKm()

	acc.ClearAnchor()

	// Berlin is far from London, but with the anchor cleared it must not
	// contribute a segment.
	delta := acc.Observe(berlin)
	assert.Zero(t, delta)
	assert.Equal(t, before, acc.TotalKm())

	// The cleared-then-observed fix anchors the next segment as usual.
	acc.Observe(paris)
	assert.InDelta(t, before+geo.DistanceKm(berlin, paris), acc.TotalKm(), 1e-9)
}

func TestAccumulator_Reset(t *testing.T) {
	var acc geo.Accumulator

	acc.Observe(paris)
	acc.Observe(london)
	acc.Reset()

	assert.Zero(t, acc.TotalKm())
	assert.Zero(t, acc.Observe(berlin), "first fix after reset should contribute zero")
}

func TestAccumulator_StationaryJitterStillCounts(t *testing.T) {
	// No filtering: tiny movements accumulate. Parity with the recorder's
	// observed-is-counted contract.
	var acc geo.Accumulator

	acc.Observe(paris)
	jitter := domain.Fix{Latitude: paris.Latitude + 1e-6, Longitude: paris.Longitude}
	acc.Observe(jitter)

	assert.Greater(t, acc.TotalKm(), 0.0)
	assert.Less(t, acc.TotalKm(), 0.001, "sub-meter jitter should stay sub-meter")
}
