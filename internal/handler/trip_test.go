package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/drivelog/internal/domain"
)

func sampleTrip() domain.Trip {
	return domain.Trip{
		ID:                 uuid.New(),
		Date:               time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC),
		DrivingTimeSeconds: 1845,
		TotalDistanceKm:    23.7,
		Path: []domain.Fix{
			{Latitude: 48.8566, Longitude: 2.3522},
			{Latitude: 48.8584, Longitude: 2.2945},
		},
		IsNew: true,
	}
}

// ---- list ------------------------------------------------------------------

func TestListTrips(t *testing.T) {
	var gotParams domain.PaginationParams
	trips := &mockTripServicer{
		list: func(_ context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
			gotParams = p
			return []domain.Trip{sampleTrip(), sampleTrip()}, 42, nil
		},
	}
	srv := newTestServer(trips, nil, nil, nil)

	rec := doRequest(t, srv, http.MethodGet, "/trips?page=3&limit=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 3, Limit: 5}, gotParams)

	var body tripListResponse
	decodeBody(t, rec, &body)
	assert.Len(t, body.Data, 2)
	assert.Equal(t, 3, body.Pagination.Page)
	assert.Equal(t, 5, body.Pagination.Limit)
	assert.Equal(t, int64(42), body.Pagination.Total)
}

func TestListTrips_DefaultPagination(t *testing.T) {
	var gotParams domain.PaginationParams
	trips := &mockTripServicer{
		list: func(_ context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
			gotParams = p
			return nil, 0, nil
		},
	}
	srv := newTestServer(trips, nil, nil, nil)

	rec := doRequest(t, srv, http.MethodGet, "/trips?page=junk", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, gotParams)
	// A nil slice from the service must still render as an empty array.
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListTrips_ServiceError(t *testing.T) {
	trips := &mockTripServicer{
		list: func(context.Context, domain.PaginationParams) ([]domain.Trip, int64, error) {
			return nil, 0, fmt.Errorf("connection refused")
		},
	}
	srv := newTestServer(trips, nil, nil, nil)

	rec := doRequest(t, srv, http.MethodGet, "/trips", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", errorCode(t, rec))
}

// ---- get -------------------------------------------------------------------

func TestGetTrip(t *testing.T) {
	trip := sampleTrip()
	trips := &mockTripServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			require.Equal(t, trip.ID, id)
			return trip, nil
		},
	}
	srv := newTestServer(trips, nil, nil, nil)

	rec := doRequest(t, srv, http.MethodGet, "/trips/"+trip.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Trip
	decodeBody(t, rec, &got)
	assert.Equal(t, trip.ID, got.ID)
	assert.Equal(t, trip.DrivingTimeSeconds, got.DrivingTimeSeconds)
	assert.Len(t, got.Path, 2)
}

func TestGetTrip_NotFound(t *testing.T) {
	trips := &mockTripServicer{
		getByID: func(context.Context, uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
		},
	}
	srv := newTestServer(trips, nil, nil, nil)

	rec := doRequest(t, srv, http.MethodGet, "/trips/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}

func TestGetTrip_BadID(t *testing.T) {
	srv := newTestServer(&mockTripServicer{}, nil, nil, nil)

	rec := doRequest(t, srv, http.MethodGet, "/trips/not-a-uuid", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}

// ---- mark seen -------------------------------------------------------------

func TestMarkTripSeen(t *testing.T) {
	id := uuid.New()
	var gotID uuid.UUID
	trips := &mockTripServicer{
		markSeen: func(_ context.Context, id uuid.UUID) error {
			gotID = id
			return nil
		},
	}
	srv := newTestServer(trips, nil, nil, nil)

	rec := doRequest(t, srv, http.MethodPost, "/trips/"+id.String()+"/seen", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, id, gotID)
}

func TestMarkTripSeen_NotFound(t *testing.T) {
	trips := &mockTripServicer{
		markSeen: func(context.Context, uuid.UUID) error {
			return fmt.Errorf("repo.TripRepo.MarkSeen: %w", domain.ErrNotFound)
		},
	}
	srv := newTestServer(trips, nil, nil, nil)

	rec := doRequest(t, srv, http.MethodPost, "/trips/"+uuid.NewString()+"/seen", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- delete ----------------------------------------------------------------

func TestDeleteTrip(t *testing.T) {
	id := uuid.New()
	var gotID uuid.UUID
	trips := &mockTripServicer{
		delete: func(_ context.Context, id uuid.UUID) error {
			gotID = id
			return nil
		},
	}
	srv := newTestServer(trips, nil, nil, nil)

	rec := doRequest(t, srv, http.MethodDelete, "/trips/"+id.String(), nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, id, gotID)
}

func TestDeleteTrip_NotFound(t *testing.T) {
	trips := &mockTripServicer{
		delete: func(context.Context, uuid.UUID) error {
			return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
		},
	}
	srv := newTestServer(trips, nil, nil, nil)

	rec := doRequest(t, srv, http.MethodDelete, "/trips/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
