// Package repo contains all database access logic for the drivelog API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/drivelog/internal/domain"
	"github.com/pkordes/drivelog/internal/pathcodec"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for finalized trips.
// The recorder and the service layer depend on this interface, not the
// concrete Postgres implementation, so both can be unit-tested with a mock.
type TripRepo interface {
	// Save inserts a finalized trip exactly as the recorder built it (the
	// recorder assigns the ID) and returns the persisted record with
	// created_at populated. A trip is inserted once and never updated,
	// except via MarkSeen.
	Save(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip, including its decoded path.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns one page of trips ordered by date descending, plus the
	// total trip count. Paths are included.
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// QueryRange returns all trips with start <= date < end, ordered by
	// date ascending. This is the read behind report aggregation and export.
	QueryRange(ctx context.Context, start, end time.Time) ([]domain.Trip, error)

	// MarkSeen clears the trip's is_new flag. This is the only mutation of a
	// finalized trip, issued by the viewing surface after first display.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	MarkSeen(ctx context.Context, id uuid.UUID) error

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, date, driving_time_seconds, total_distance_km, path, is_new, created_at`

// Save inserts a new trip row with the recorder-assigned ID.
// The path is stored as pathcodec bytes; an empty path is a valid encoding.
func (r *pgTripRepo) Save(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (id, date, driving_time_seconds, total_distance_km, path, is_new)
		VALUES (@id, @date, @driving_time_seconds, @total_distance_km, @path, @is_new)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":                   trip.ID,
		"date":                 trip.Date,
		"driving_time_seconds": trip.DrivingTimeSeconds,
		"total_distance_km":    trip.TotalDistanceKm,
		"path":                 pathcodec.Encode(trip.Path),
		"is_new":               trip.IsNew,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Save: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of trips ordered by date descending (most recent first).
func (r *pgTripRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM trips`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: count: %w", err)
	}

	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY date DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, total, nil
}

// QueryRange returns trips with date in [start, end), oldest first.
// The exclusive upper bound matches the period resolver's convention.
func (r *pgTripRepo) QueryRange(ctx context.Context, start, end time.Time) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE date >= @start AND date < @end
		ORDER BY date ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"start": start, "end": end})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.QueryRange: %w", err)
	}
	defer rows.Close()

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.QueryRange: %w", err)
	}
	return trips, nil
}

// MarkSeen clears is_new for a trip.
func (r *pgTripRepo) MarkSeen(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE trips SET is_new = false WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.MarkSeen: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.MarkSeen: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// Path bytes that fail to decode degrade the trip to an empty path; the
// trip's totals stay valid. That is the prescribed recovery for
// domain.ErrMalformedPath, so it is applied here at the lowest read point.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t   domain.Trip
		id  pgtype.UUID
		raw []byte
	)

	err := s.Scan(&id, &t.Date, &t.DrivingTimeSeconds, &t.TotalDistanceKm, &raw, &t.IsNew, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	path, err := pathcodec.Decode(raw)
	if err != nil {
		if !errors.Is(err, domain.ErrMalformedPath) {
			return domain.Trip{}, err
		}
		path = nil
	}
	t.Path = path

	return t, nil
}

// collectTrips drains rows into a slice, checking the rows error afterwards.
func collectTrips(rows pgx.Rows) ([]domain.Trip, error) {
	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return trips, nil
}
