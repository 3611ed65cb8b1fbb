// Package tracker holds the live GPS tracking sessions. Sessions are
// process-local and deliberately non-durable: the map is lost on
// restart. Growth is bounded by a capacity limit and an idle sweep.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/models"
	"github.com/doworks-png/road-monitor/internal/store"
)

const sweepInterval = time.Minute

var (
	// ErrNotFound is returned when updating or ending an unknown session.
	ErrNotFound = errors.New("session not found")
	// ErrCapacity is returned when the session map is full.
	ErrCapacity = errors.New("session capacity reached")
)

// Position is a single live position sample.
type Position struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
	TaskName    string  `json:"taskName"`
	WorkType    string  `json:"workType"`
}

// SessionStats is returned after each position update.
type SessionStats struct {
	DurationMs    int64 `json:"duration"`
	PositionCount int   `json:"positionCount"`
}

// SessionSummary is returned when a session ends.
type SessionSummary struct {
	DurationMs     int64     `json:"duration"`
	TotalPositions int       `json:"totalPositions"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
}

type session struct {
	userID     string
	projectID  string
	startTime  time.Time
	lastUpdate time.Time
	positions  []Position
}

type Params struct {
	fx.In

	Lifecycle   fx.Lifecycle
	Store       store.Store
	Logger      *zap.Logger
	MaxSessions int           `name:"tracker_max_sessions"`
	IdleTimeout time.Duration `name:"tracker_idle_timeout"`
}

// Tracker is the bounded, swept session map.
type Tracker struct {
	mu       sync.Mutex
	sessions map[string]*session

	store       store.Store
	logger      *zap.Logger
	maxSessions int
	idleTimeout time.Duration
	shutdown    chan struct{}
}

func New(store store.Store, logger *zap.Logger, maxSessions int, idleTimeout time.Duration) *Tracker {
	return &Tracker{
		sessions:    make(map[string]*session),
		store:       store,
		logger:      logger,
		maxSessions: maxSessions,
		idleTimeout: idleTimeout,
		shutdown:    make(chan struct{}),
	}
}

// NewTracker constructs the tracker and registers its sweep goroutine
// with the application lifecycle.
func NewTracker(p Params) *Tracker {
	t := New(p.Store, p.Logger, p.MaxSessions, p.IdleTimeout)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go t.runSweep()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(t.shutdown)
			return nil
		},
	})

	return t
}

var Module = fx.Module("tracker",
	fx.Provide(
		NewTracker,
	),
)

// StartSession registers a live session. Reusing an existing session id
// replaces its state silently; the last writer wins.
func (t *Tracker) StartSession(sessionID, userID, projectID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.sessions[sessionID]; !exists && len(t.sessions) >= t.maxSessions {
		return ErrCapacity
	}

	now := time.Now()
	t.sessions[sessionID] = &session{
		userID:     userID,
		projectID:  projectID,
		startTime:  now,
		lastUpdate: now,
	}

	t.logger.Info("tracking session started",
		zap.String("session_id", sessionID),
		zap.String("user_id", userID),
		zap.String("project_id", projectID))
	return nil
}

// UpdatePosition appends a position sample to the session. When the
// backing store is persistent, the sample is also recorded as a GPS
// entry; the demo store records nothing durable.
func (t *Tracker) UpdatePosition(ctx context.Context, sessionID string, pos Position) (*SessionStats, error) {
	t.mu.Lock()
	sess, ok := t.sessions[sessionID]
	if !ok {
		t.mu.Unlock()
		return nil, ErrNotFound
	}

	sess.positions = append(sess.positions, pos)
	sess.lastUpdate = time.Now()

	stats := &SessionStats{
		DurationMs:    time.Since(sess.startTime).Milliseconds(),
		PositionCount: len(sess.positions),
	}
	userID, projectID := sess.userID, sess.projectID
	t.mu.Unlock()

	if t.store.Persistent() {
		entry := &models.GPSEntry{
			ID:          uuid.New().String(),
			Latitude:    pos.Latitude,
			Longitude:   pos.Longitude,
			Description: pos.Description,
			ProjectID:   projectID,
			UserID:      userID,
			TaskName:    pos.TaskName,
			WorkType:    pos.WorkType,
			Timestamp:   time.Now().UTC(),
			CreatedAt:   time.Now().UTC(),
		}
		if entry.Description == "" {
			entry.Description = "Real-time tracking update"
		}
		if entry.TaskName == "" {
			entry.TaskName = "Real-time Tracking"
		}
		if entry.WorkType == "" {
			entry.WorkType = "Field Work"
		}

		if err := t.store.CreateGPSEntry(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to record tracking position: %w", err)
		}
	}

	return stats, nil
}

// EndSession removes the session and returns its aggregate summary.
func (t *Tracker) EndSession(sessionID string) (*SessionSummary, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	sess, ok := t.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	delete(t.sessions, sessionID)

	now := time.Now()
	summary := &SessionSummary{
		DurationMs:     now.Sub(sess.startTime).Milliseconds(),
		TotalPositions: len(sess.positions),
		StartTime:      sess.startTime,
		EndTime:        now,
	}

	t.logger.Info("tracking session ended",
		zap.String("session_id", sessionID),
		zap.Int("total_positions", summary.TotalPositions))
	return summary, nil
}

// ActiveSessions reports the current session count.
func (t *Tracker) ActiveSessions() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

func (t *Tracker) runSweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-t.shutdown:
			return
		case <-ticker.C:
			evicted := t.sweep(time.Now())
			if evicted > 0 {
				t.logger.Info("evicted idle tracking sessions", zap.Int("count", evicted))
			}
		}
	}
}

// sweep drops sessions whose last update is older than the idle timeout
// and returns the number evicted.
func (t *Tracker) sweep(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	evicted := 0
	for id, sess := range t.sessions {
		if now.Sub(sess.lastUpdate) > t.idleTimeout {
			delete(t.sessions, id)
			evicted++
		}
	}
	return evicted
}
