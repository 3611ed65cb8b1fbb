package handlers

import (
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/models"
	"github.com/doworks-png/road-monitor/internal/service"
)

// Monitoring POST actions.
const (
	actionBackup      = "backup"
	actionHealthCheck = "health-check"
)

type MonitoringHandlerParams struct {
	fx.In

	MetricsService service.MetricsService
	Logger         *zap.Logger
	Environment    string `name:"environment"`
}

type MonitoringHandler struct {
	metricsService service.MetricsService
	logger         *zap.Logger
	environment    string
}

func NewMonitoringHandler(p MonitoringHandlerParams) *MonitoringHandler {
	return &MonitoringHandler{
		metricsService: p.MetricsService,
		logger:         p.Logger,
		environment:    p.Environment,
	}
}

type monitoringSummary struct {
	Status         models.HealthStatusEnum `json:"status"`
	ActiveProjects int64                   `json:"activeProjects"`
	ActiveTrackers int64                   `json:"activeTrackers"`
	SystemUptimeMs int64                   `json:"systemUptime"`
	DatabaseHealth models.HealthStatusEnum `json:"databaseHealth"`
}

type monitoringResponse struct {
	Success   bool                    `json:"success"`
	Health    models.HealthStatusEnum `json:"health"`
	Metrics   service.SystemMetrics   `json:"metrics"`
	Timestamp time.Time               `json:"timestamp"`
	Summary   monitoringSummary       `json:"summary"`
}

func (h *MonitoringHandler) Get(w http.ResponseWriter, r *http.Request) {
	metrics := h.metricsService.SystemMetrics(r.Context())

	writeJSON(w, http.StatusOK, monitoringResponse{
		Success:   true,
		Health:    metrics.Health,
		Metrics:   metrics,
		Timestamp: time.Now().UTC(),
		Summary: monitoringSummary{
			Status:         metrics.Health,
			ActiveProjects: metrics.Projects.ActiveProjects,
			ActiveTrackers: metrics.GPS.ActiveTrackers,
			SystemUptimeMs: metrics.System.UptimeMs,
			DatabaseHealth: metrics.Database.Status,
		},
	})
}

type monitoringActionRequest struct {
	Action string `json:"action"`
}

func (h *MonitoringHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req monitoringActionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	switch req.Action {
	case actionBackup:
		report := h.metricsService.Backup(r.Context())
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Database backup completed successfully",
			"backup":  report,
		})

	case actionHealthCheck:
		report := h.metricsService.HealthCheck(r.Context())
		writeJSON(w, http.StatusOK, map[string]any{
			"success":       true,
			"healthChecks":  report.Checks,
			"overallStatus": report.OverallStatus,
			"timestamp":     report.Timestamp,
		})

	default:
		RespondBadRequest(w, "invalid action specified")
	}
}

func (h *MonitoringHandler) DatabaseStatus(w http.ResponseWriter, r *http.Request) {
	report := h.metricsService.DatabaseStatus(r.Context())

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"timestamp": time.Now().UTC(),
		"database":  report,
		"environment": map[string]any{
			"environment":     h.environment,
			"mockDataEnabled": report.DataSource == "mock",
		},
	})
}
