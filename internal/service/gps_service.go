package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/doworks-png/road-monitor/internal/apperr"
	"github.com/doworks-png/road-monitor/internal/models"
	"github.com/doworks-png/road-monitor/internal/store"
)

// CreateGPSInput is the payload for GPS entry creation. Latitude and
// Longitude are pointers so that an absent coordinate is distinguishable
// from zero (the equator and the prime meridian are valid positions).
type CreateGPSInput struct {
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	Description     string    `json:"description"`
	ProjectID       string    `json:"projectId"`
	UserID          string    `json:"userId"`
	TaskName        string    `json:"taskName"`
	WorkType        string    `json:"workType"`
	RoadSide        string    `json:"roadSide"`
	StartChainage   string    `json:"startChainage"`
	EndChainage     string    `json:"endChainage"`
	TaskDescription string    `json:"taskDescription"`
	Photos          []string  `json:"photos"`
	Timestamp       time.Time `json:"timestamp"`
}

// RealtimeResult bundles a realtime GPS listing with its live summary.
type RealtimeResult struct {
	Entries        []models.GPSEntry `json:"data"`
	ActiveTrackers int64             `json:"activeTrackers"`
	TotalEntries   int               `json:"totalEntries"`
	TimeframeHours int               `json:"timeframe"`
	LastUpdate     time.Time         `json:"lastUpdate"`
}

// GPSService defines the interface for GPS entry operations
type GPSService interface {
	List(ctx context.Context, projectID string) ([]models.GPSEntry, error)
	Create(ctx context.Context, input CreateGPSInput) (*models.GPSEntry, error)
	Realtime(ctx context.Context, projectID, userID string, timeframeHours int) (*RealtimeResult, error)
}

// GPSServiceImpl implements GPSService interface
type GPSServiceImpl struct {
	store  store.Store
	logger *zap.Logger
}

// NewGPSService creates a new instance of GPSService
func NewGPSService(s store.Store, logger *zap.Logger) GPSService {
	return &GPSServiceImpl{
		store:  s,
		logger: logger,
	}
}

func (s *GPSServiceImpl) List(ctx context.Context, projectID string) ([]models.GPSEntry, error) {
	entries, err := s.store.ListGPSEntries(ctx, store.GPSFilter{ProjectID: projectID})
	if err != nil {
		return nil, apperr.Internal("failed to fetch GPS entries", err)
	}
	return entries, nil
}

func (s *GPSServiceImpl) Create(ctx context.Context, input CreateGPSInput) (*models.GPSEntry, error) {
	if input.Latitude == nil || input.Longitude == nil || input.ProjectID == "" || input.UserID == "" {
		return nil, apperr.Validation("missing required fields: latitude, longitude, projectId, userId")
	}
	if math.Abs(*input.Latitude) > 90 || math.Abs(*input.Longitude) > 180 {
		return nil, apperr.Validation("invalid GPS coordinates")
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	var photos datatypes.JSON
	if len(input.Photos) > 0 {
		raw, err := json.Marshal(input.Photos)
		if err != nil {
			return nil, apperr.Internal("failed to encode photos", err)
		}
		photos = datatypes.JSON(raw)
	}

	entry := &models.GPSEntry{
		ID:              uuid.New().String(),
		Latitude:        *input.Latitude,
		Longitude:       *input.Longitude,
		Description:     input.Description,
		ProjectID:       input.ProjectID,
		UserID:          input.UserID,
		TaskName:        input.TaskName,
		WorkType:        input.WorkType,
		RoadSide:        input.RoadSide,
		StartChainage:   input.StartChainage,
		EndChainage:     input.EndChainage,
		TaskDescription: input.TaskDescription,
		Photos:          photos,
		Timestamp:       timestamp,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.store.CreateGPSEntry(ctx, entry); err != nil {
		return nil, apperr.Internal("failed to create GPS entry", err)
	}

	s.logger.Info("gps entry created",
		zap.String("entry_id", entry.ID),
		zap.String("project_id", entry.ProjectID))
	return entry, nil
}

func (s *GPSServiceImpl) Realtime(ctx context.Context, projectID, userID string, timeframeHours int) (*RealtimeResult, error) {
	if timeframeHours <= 0 {
		timeframeHours = 1
	}

	entries, err := s.store.ListGPSEntries(ctx, store.GPSFilter{
		ProjectID: projectID,
		UserID:    userID,
		Since:     time.Now().Add(-time.Duration(timeframeHours) * time.Hour),
	})
	if err != nil {
		return nil, apperr.Internal("failed to fetch real-time GPS data", err)
	}

	activity, err := s.store.GPSActivity(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to compute GPS activity", err)
	}

	return &RealtimeResult{
		Entries:        entries,
		ActiveTrackers: activity.ActiveTrackers,
		TotalEntries:   len(entries),
		TimeframeHours: timeframeHours,
		LastUpdate:     time.Now().UTC(),
	}, nil
}
