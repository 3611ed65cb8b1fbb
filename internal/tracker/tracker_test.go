package tracker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/store"
)

func newTestTracker(s store.Store) *Tracker {
	return New(s, zap.NewNop(), 1000, 30*time.Minute)
}

func TestSessionLifecycle(t *testing.T) {
	memStore := store.NewMemoryStore()
	tr := newTestTracker(memStore)
	ctx := context.Background()

	if err := tr.StartSession("sess-1", "user-3", "proj-1"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if tr.ActiveSessions() != 1 {
		t.Fatalf("expected 1 active session, got %d", tr.ActiveSessions())
	}

	stats, err := tr.UpdatePosition(ctx, "sess-1", Position{Latitude: -5.8, Longitude: 144.2})
	if err != nil {
		t.Fatalf("UpdatePosition: %v", err)
	}
	if stats.PositionCount != 1 {
		t.Errorf("expected 1 position, got %d", stats.PositionCount)
	}

	stats, err = tr.UpdatePosition(ctx, "sess-1", Position{Latitude: -5.81, Longitude: 144.21})
	if err != nil {
		t.Fatalf("UpdatePosition: %v", err)
	}
	if stats.PositionCount != 2 {
		t.Errorf("expected 2 positions, got %d", stats.PositionCount)
	}

	summary, err := tr.EndSession("sess-1")
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if summary.TotalPositions != 2 {
		t.Errorf("expected 2 total positions, got %d", summary.TotalPositions)
	}
	if summary.EndTime.Before(summary.StartTime) {
		t.Errorf("end %v before start %v", summary.EndTime, summary.StartTime)
	}

	if _, err := tr.EndSession("sess-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after end, got %v", err)
	}
	if _, err := tr.UpdatePosition(ctx, "sess-1", Position{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after end, got %v", err)
	}
}

func TestUpdateUnknownSession(t *testing.T) {
	tr := newTestTracker(store.NewMemoryStore())

	if _, err := tr.UpdatePosition(context.Background(), "nope", Position{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionIDReuseReplacesState(t *testing.T) {
	tr := newTestTracker(store.NewMemoryStore())
	ctx := context.Background()

	if err := tr.StartSession("sess-1", "user-3", "proj-1"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := tr.UpdatePosition(ctx, "sess-1", Position{}); err != nil {
		t.Fatalf("UpdatePosition: %v", err)
	}

	// Starting again with the same id wipes the accumulated positions.
	if err := tr.StartSession("sess-1", "user-4", "proj-2"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	stats, err := tr.UpdatePosition(ctx, "sess-1", Position{})
	if err != nil {
		t.Fatalf("UpdatePosition: %v", err)
	}
	if stats.PositionCount != 1 {
		t.Errorf("expected fresh session with 1 position, got %d", stats.PositionCount)
	}
	if tr.ActiveSessions() != 1 {
		t.Errorf("expected 1 active session, got %d", tr.ActiveSessions())
	}
}

func TestSessionCapacity(t *testing.T) {
	tr := New(store.NewMemoryStore(), zap.NewNop(), 2, 30*time.Minute)

	if err := tr.StartSession("sess-1", "u", "p"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if err := tr.StartSession("sess-2", "u", "p"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if err := tr.StartSession("sess-3", "u", "p"); !errors.Is(err, ErrCapacity) {
		t.Errorf("expected ErrCapacity, got %v", err)
	}

	// Restarting an existing session does not count against capacity.
	if err := tr.StartSession("sess-1", "u", "p"); err != nil {
		t.Errorf("restart of existing session must succeed at capacity: %v", err)
	}

	// Freeing a slot admits a new session.
	if _, err := tr.EndSession("sess-2"); err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if err := tr.StartSession("sess-3", "u", "p"); err != nil {
		t.Errorf("expected capacity freed, got %v", err)
	}
}

func TestIdleSweep(t *testing.T) {
	tr := New(store.NewMemoryStore(), zap.NewNop(), 1000, 30*time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("sess-%d", i)
		if err := tr.StartSession(id, "u", "p"); err != nil {
			t.Fatalf("StartSession: %v", err)
		}
	}

	// Nothing is idle yet.
	if evicted := tr.sweep(time.Now()); evicted != 0 {
		t.Errorf("expected no evictions, got %d", evicted)
	}

	// Touch one session, then sweep as if 31 minutes passed.
	if _, err := tr.UpdatePosition(ctx, "sess-1", Position{}); err != nil {
		t.Fatalf("UpdatePosition: %v", err)
	}
	future := time.Now().Add(31 * time.Minute)
	if evicted := tr.sweep(future); evicted != 3 {
		t.Errorf("expected all 3 sessions idle at +31m, got %d evictions", evicted)
	}
	if tr.ActiveSessions() != 0 {
		t.Errorf("expected empty map after sweep, got %d", tr.ActiveSessions())
	}
}

func TestUpdateDoesNotPersistOnMockStore(t *testing.T) {
	memStore := store.NewMemoryStore()
	tr := newTestTracker(memStore)
	ctx := context.Background()

	before, err := memStore.ListGPSEntries(ctx, store.GPSFilter{})
	if err != nil {
		t.Fatalf("ListGPSEntries: %v", err)
	}

	if err := tr.StartSession("sess-1", "user-3", "proj-1"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := tr.UpdatePosition(ctx, "sess-1", Position{Latitude: -5.8, Longitude: 144.2}); err != nil {
		t.Fatalf("UpdatePosition: %v", err)
	}

	after, err := memStore.ListGPSEntries(ctx, store.GPSFilter{})
	if err != nil {
		t.Fatalf("ListGPSEntries: %v", err)
	}
	if len(after) != len(before) {
		t.Errorf("mock store must not record tracking positions: %d -> %d", len(before), len(after))
	}
}

// persistentStore makes the memory store claim durability so position
// recording can be observed without a database.
type persistentStore struct {
	*store.MemoryStore
}

func (p *persistentStore) Persistent() bool { return true }

func TestUpdatePersistsOnDurableStore(t *testing.T) {
	memStore := store.NewMemoryStore()
	tr := newTestTracker(&persistentStore{MemoryStore: memStore})
	ctx := context.Background()

	if err := tr.StartSession("sess-1", "user-3", "proj-1"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := tr.UpdatePosition(ctx, "sess-1", Position{Latitude: -5.8, Longitude: 144.2}); err != nil {
		t.Fatalf("UpdatePosition: %v", err)
	}

	entries, err := memStore.ListGPSEntries(ctx, store.GPSFilter{ProjectID: "proj-1", UserID: "user-3"})
	if err != nil {
		t.Fatalf("ListGPSEntries: %v", err)
	}

	var found bool
	for _, e := range entries {
		if e.Description == "Real-time tracking update" && e.TaskName == "Real-time Tracking" {
			found = true
		}
	}
	if !found {
		t.Error("expected a recorded tracking entry with default labels")
	}
}
