// Package recorder implements the trip recording state machine.
//
// A Recorder owns at most one in-progress trip and moves through
// Idle → Recording → Paused → Recording → Idle under explicit lifecycle
// calls. Position fixes and timer ticks arrive asynchronously from outside;
// every state-mutating operation is serialized under one mutex, so a fix
// racing a Stop is either fully applied before finalization or dropped
// after it — never half-applied.
//
// The Recorder performs no I/O of its own except handing the finalized trip
// to the TripSaver on Stop.
package recorder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/drivelog/internal/domain"
	"github.com/pkordes/drivelog/internal/geo"
)

// State is the recorder's lifecycle state. Ended is not represented: Stop
// finalizes the trip and returns the recorder to Idle in the same step.
type State string

const (
	StateIdle      State = "idle"
	StateRecording State = "recording"
	StatePaused    State = "paused"
)

// TripSaver persists a finalized trip. The trip repository satisfies this
// in production; tests pass a capture double.
type TripSaver interface {
	Save(ctx context.Context, trip domain.Trip) (domain.Trip, error)
}

// Snapshot is a read-only view of the recorder for the observing surface.
type Snapshot struct {
	State          State     `json:"state"`
	StartedAt      time.Time `json:"started_at,omitzero"`
	ElapsedSeconds int64     `json:"elapsed_seconds"`
	DistanceKm     float64   `json:"distance_km"`
	FixCount       int       `json:"fix_count"`
}

// Recorder is the single owner of one live trip's state.
// All methods are safe for concurrent use.
type Recorder struct {
	saver TripSaver
	now   func() time.Time

	mu        sync.Mutex
	state     State
	startedAt time.Time
	elapsed   int64
	dist      geo.Accumulator
	path      []domain.Fix
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock overrides the wall clock. Tests use this to pin trip dates.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// New constructs an idle Recorder that saves finalized trips to saver.
func New(saver TripSaver, opts ...Option) *Recorder {
	r := &Recorder{
		saver: saver,
		now:   time.Now,
		state: StateIdle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start begins a new recording. Elapsed time and distance are reset to zero
// and the start instant becomes the eventual trip date.
// Valid only from Idle.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateIdle {
		return fmt.Errorf("recorder.Start from %s: %w", r.state, domain.ErrInvalidTransition)
	}

	r.state = StateRecording
	r.startedAt = r.now()
	r.elapsed = 0
	r.dist.Reset()
	r.path = nil
	return nil
}

// Pause freezes the timer and stops consuming fixes. Elapsed time and
// accumulated distance are retained, not reset.
// Valid only from Recording.
func (r *Recorder) Pause() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRecording {
		return fmt.Errorf("recorder.Pause from %s: %w", r.state, domain.ErrInvalidTransition)
	}

	r.state = StatePaused
	return nil
}

// Resume continues a paused recording without resetting elapsed time or
// distance. The distance anchor is cleared so the first fix after resume
// contributes a zero delta instead of a segment spanning the pause gap.
// Valid only from Paused.
func (r *Recorder) Resume() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StatePaused {
		return fmt.Errorf("recorder.Resume from %s: %w", r.state, domain.ErrInvalidTransition)
	}

	r.state = StateRecording
	r.dist.ClearAnchor()
	return nil
}

// Stop finalizes the trip and hands it to the saver, then returns the
// recorder to Idle. Valid from Recording or Paused.
//
// On a save failure the recorder still goes Idle, but the fully built trip
// is returned alongside the error so the caller keeps the data and can
// retry persistence itself — the failure is surfaced, never retried here.
func (r *Recorder) Stop(ctx context.Context) (domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRecording && r.state != StatePaused {
		return domain.Trip{}, fmt.Errorf("recorder.Stop from %s: %w", r.state, domain.ErrInvalidTransition)
	}

	trip := domain.Trip{
		ID:                 uuid.New(),
		Date:               r.startedAt,
		DrivingTimeSeconds: r.elapsed,
		TotalDistanceKm:    r.dist.TotalKm(),
		Path:               r.path,
		IsNew:              true,
	}

	r.state = StateIdle
	r.startedAt = time.Time{}
	r.elapsed = 0
	r.dist.Reset()
	r.path = nil

	saved, err := r.saver.Save(ctx, trip)
	if err != nil {
		return trip, fmt.Errorf("recorder.Stop: %w", err)
	}
	return saved, nil
}

// Observe delivers one position fix. While Recording it is appended to the
// trip path and folded into the distance total; in any other state the fix
// is dropped, matching an unsubscribed sensor stream.
func (r *Recorder) Observe(fix domain.Fix) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRecording {
		return
	}
	r.path = append(r.path, fix)
	r.dist.Observe(fix)
}

// Tick advances the trip timer by one second. The external tick source runs
// continuously; its effect is gated here so pausing freezes elapsed time at
// exactly the second reached.
func (r *Recorder) Tick() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRecording {
		return
	}
	r.elapsed++
}

// Snapshot returns a consistent view of the recorder's current state.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		State:          r.state,
		StartedAt:      r.startedAt,
		ElapsedSeconds: r.elapsed,
		DistanceKm:     r.dist.TotalKm(),
		FixCount:       len(r.path),
	}
}
