package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/service"
	"github.com/doworks-png/road-monitor/internal/tracker"
)

// Realtime POST actions.
const (
	actionStartSession   = "start-session"
	actionUpdatePosition = "update-position"
	actionEndSession     = "end-session"
)

type GPSHandlerParams struct {
	fx.In

	GPSService service.GPSService
	Tracker    *tracker.Tracker
	Logger     *zap.Logger
}

type GPSHandler struct {
	gpsService service.GPSService
	tracker    *tracker.Tracker
	logger     *zap.Logger
}

func NewGPSHandler(p GPSHandlerParams) *GPSHandler {
	return &GPSHandler{
		gpsService: p.GPSService,
		tracker:    p.Tracker,
		logger:     p.Logger,
	}
}

func (h *GPSHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.gpsService.List(r.Context(), r.URL.Query().Get("projectId"))
	if err != nil {
		RespondError(w, h.logger, err)
		return
	}
	RespondData(w, http.StatusOK, entries)
}

func (h *GPSHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateGPSInput
	if !decodeBody(w, r, &input) {
		return
	}

	entry, err := h.gpsService.Create(r.Context(), input)
	if err != nil {
		RespondError(w, h.logger, err)
		return
	}
	RespondData(w, http.StatusCreated, entry)
}

func (h *GPSHandler) Realtime(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	projectID := query.Get("projectId")
	if projectID == "all" {
		projectID = ""
	}
	userID := query.Get("userId")
	if userID == "all" {
		userID = ""
	}

	timeframe := 1
	if raw := query.Get("timeframe"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			timeframe = parsed
		}
	}

	result, err := h.gpsService.Realtime(r.Context(), projectID, userID, timeframe)
	if err != nil {
		RespondError(w, h.logger, err)
		return
	}
	RespondData(w, http.StatusOK, result)
}

type realtimeRequest struct {
	Action    string           `json:"action"`
	SessionID string           `json:"sessionId"`
	UserID    string           `json:"userId"`
	ProjectID string           `json:"projectId"`
	Position  tracker.Position `json:"position"`
}

// RealtimeAction drives the live tracking session lifecycle. Unknown
// actions and unknown session ids are client errors.
func (h *GPSHandler) RealtimeAction(w http.ResponseWriter, r *http.Request) {
	var req realtimeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.SessionID == "" {
		RespondBadRequest(w, "sessionId is required")
		return
	}

	switch req.Action {
	case actionStartSession:
		if err := h.tracker.StartSession(req.SessionID, req.UserID, req.ProjectID); err != nil {
			h.logger.Error("failed to start tracking session", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, Envelope{
				Success: false,
				Error:   "failed to start tracking session",
				Details: err.Error(),
			})
			return
		}
		RespondData(w, http.StatusOK, map[string]string{
			"message":   "Tracking session started",
			"sessionId": req.SessionID,
		})

	case actionUpdatePosition:
		stats, err := h.tracker.UpdatePosition(r.Context(), req.SessionID, req.Position)
		if errors.Is(err, tracker.ErrNotFound) {
			RespondBadRequest(w, "session not found")
			return
		}
		if err != nil {
			h.logger.Error("failed to update position", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, Envelope{
				Success: false,
				Error:   "failed to update position",
				Details: err.Error(),
			})
			return
		}
		RespondData(w, http.StatusOK, map[string]any{
			"message":      "Position updated",
			"sessionStats": stats,
		})

	case actionEndSession:
		summary, err := h.tracker.EndSession(req.SessionID)
		if errors.Is(err, tracker.ErrNotFound) {
			RespondBadRequest(w, "session not found")
			return
		}
		RespondData(w, http.StatusOK, map[string]any{
			"message":        "Tracking session ended",
			"sessionSummary": summary,
		})

	default:
		RespondBadRequest(w, "invalid action")
	}
}
