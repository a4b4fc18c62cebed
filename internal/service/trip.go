// Package service contains the business logic for the drivelog API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/drivelog/internal/domain"
	"github.com/pkordes/drivelog/internal/repo"
)

// TripService implements business logic for finalized trips.
// Trips are created by the recorder, never through this service; what
// remains is reading, acknowledging, and deleting them.
type TripService struct {
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(trips repo.TripRepo) *TripService {
	return &TripService{trips: trips}
}

// List returns one page of trips, newest first, plus the total count.
func (s *TripService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.List: %w", err)
	}
	return trips, total, nil
}

// GetByID returns a single trip with its decoded path.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// MarkSeen clears a trip's is_new flag after the viewing surface has
// displayed it. Idempotent from the caller's point of view: marking an
// already-seen trip succeeds.
func (s *TripService) MarkSeen(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.MarkSeen(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.MarkSeen: %w", err)
	}
	return nil
}

// Delete removes a trip by ID.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}
