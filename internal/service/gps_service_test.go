package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/apperr"
	"github.com/doworks-png/road-monitor/internal/store"
)

func coord(v float64) *float64 { return &v }

func TestGPSCreateValidation(t *testing.T) {
	svc := NewGPSService(store.NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateGPSInput
	}{
		{"missing latitude", CreateGPSInput{Longitude: coord(144.2), ProjectID: "proj-1", UserID: "user-3"}},
		{"missing longitude", CreateGPSInput{Latitude: coord(-5.8), ProjectID: "proj-1", UserID: "user-3"}},
		{"missing project", CreateGPSInput{Latitude: coord(-5.8), Longitude: coord(144.2), UserID: "user-3"}},
		{"missing user", CreateGPSInput{Latitude: coord(-5.8), Longitude: coord(144.2), ProjectID: "proj-1"}},
		{"latitude out of range", CreateGPSInput{Latitude: coord(91), Longitude: coord(144.2), ProjectID: "proj-1", UserID: "user-3"}},
		{"longitude out of range", CreateGPSInput{Latitude: coord(-5.8), Longitude: coord(-181), ProjectID: "proj-1", UserID: "user-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestGPSCreateBoundaryCoordinates(t *testing.T) {
	svc := NewGPSService(store.NewMemoryStore(), zap.NewNop())

	entry, err := svc.Create(context.Background(), CreateGPSInput{
		Latitude: coord(0), Longitude: coord(0),
		ProjectID: "proj-1", UserID: "user-3",
	})
	if err != nil {
		t.Fatalf("zero coordinates must be accepted: %v", err)
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected timestamp default")
	}
}

func TestGPSCreateWithPhotos(t *testing.T) {
	svc := NewGPSService(store.NewMemoryStore(), zap.NewNop())

	entry, err := svc.Create(context.Background(), CreateGPSInput{
		Latitude: coord(-5.8), Longitude: coord(144.2),
		ProjectID: "proj-1", UserID: "user-3",
		Photos: []string{"site-a.jpg", "site-b.jpg"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var photos []string
	if err := json.Unmarshal(entry.Photos, &photos); err != nil {
		t.Fatalf("photos not stored as JSON: %v", err)
	}
	if len(photos) != 2 || photos[0] != "site-a.jpg" {
		t.Errorf("unexpected photos %v", photos)
	}
}

func TestGPSRealtime(t *testing.T) {
	memStore := store.NewMemoryStore()
	svc := NewGPSService(memStore, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateGPSInput{
		Latitude: coord(-5.8), Longitude: coord(144.2),
		ProjectID: "proj-1", UserID: "user-3",
		Timestamp: time.Now(),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	result, err := svc.Realtime(ctx, "proj-1", "", 0)
	if err != nil {
		t.Fatalf("Realtime: %v", err)
	}
	if result.TimeframeHours != 1 {
		t.Errorf("expected default timeframe 1, got %d", result.TimeframeHours)
	}
	if result.TotalEntries != 1 || len(result.Entries) != 1 {
		t.Errorf("expected 1 recent entry, got %d", result.TotalEntries)
	}
	if result.ActiveTrackers != 1 {
		t.Errorf("expected 1 active tracker, got %d", result.ActiveTrackers)
	}

	other, err := svc.Realtime(ctx, "proj-2", "", 1)
	if err != nil {
		t.Fatalf("Realtime: %v", err)
	}
	if other.TotalEntries != 0 {
		t.Errorf("expected no recent entries for proj-2, got %d", other.TotalEntries)
	}
}
