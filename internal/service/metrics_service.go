package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/models"
	"github.com/doworks-png/road-monitor/internal/store"
)

// DatabaseMetrics is the database group of the system metrics bundle.
type DatabaseMetrics struct {
	Status                models.HealthStatusEnum `json:"status"`
	ConnectionTimeMs      float64                 `json:"connectionTime"`
	TotalProjects         int64                   `json:"totalProjects"`
	TotalUsers            int64                   `json:"totalUsers"`
	TotalGPSEntries       int64                   `json:"totalGPSEntries"`
	TotalFinancialEntries int64                   `json:"totalFinancialEntries"`
	LastBackup            *time.Time              `json:"lastBackup"`
}

// GPSMetrics is the tracking group of the system metrics bundle.
type GPSMetrics struct {
	ActiveTrackers int64      `json:"activeTrackers"`
	EntriesLast24h int64      `json:"entriesLast24h"`
	LastUpdate     *time.Time `json:"lastUpdate"`
}

// ProjectMetrics is the project group of the system metrics bundle.
type ProjectMetrics struct {
	ActiveProjects    int64   `json:"activeProjects"`
	CompletedProjects int64   `json:"completedProjects"`
	TotalBudget       float64 `json:"totalBudget"`
	TotalSpent        float64 `json:"totalSpent"`
	AverageProgress   float64 `json:"averageProgress"`
}

// ProcessMetrics is the process group of the system metrics bundle.
type ProcessMetrics struct {
	UptimeMs        int64     `json:"uptime"`
	Version         string    `json:"version"`
	Environment     string    `json:"environment"`
	LastHealthCheck time.Time `json:"lastHealthCheck"`
}

// SystemMetrics is the full /api/monitoring bundle.
type SystemMetrics struct {
	Health   models.HealthStatusEnum `json:"health"`
	Database DatabaseMetrics         `json:"database"`
	GPS      GPSMetrics              `json:"gpsTracking"`
	Projects ProjectMetrics          `json:"projects"`
	System   ProcessMetrics          `json:"system"`
}

// BackupReport describes a completed (simulated) backup run.
type BackupReport struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	Status          string    `json:"status"`
	Tables          []string  `json:"tables"`
	DurationSeconds int       `json:"duration"`
}

// HealthReport is the result of the health-check monitoring action.
type HealthReport struct {
	Checks        map[string]string       `json:"healthChecks"`
	OverallStatus models.HealthStatusEnum `json:"overallStatus"`
	Timestamp     time.Time               `json:"timestamp"`
}

// DatabaseStatusReport is the database block of /api/database/status.
type DatabaseStatusReport struct {
	Status           models.HealthStatusEnum `json:"status"`
	DataSource       string                  `json:"dataSource"`
	Message          string                  `json:"message"`
	ConnectionTimeMs float64                 `json:"connectionTime"`
	Counts           map[string]int64        `json:"counts"`
}

// MetricsService computes derived system statistics for the dashboard.
type MetricsService interface {
	SystemMetrics(ctx context.Context) SystemMetrics
	DatabaseStatus(ctx context.Context) DatabaseStatusReport
	Backup(ctx context.Context) BackupReport
	HealthCheck(ctx context.Context) HealthReport
}

type MetricsServiceParams struct {
	fx.In

	Store       store.Store
	Logger      *zap.Logger
	Version     string `name:"version"`
	Environment string `name:"environment"`
}

type MetricsServiceImpl struct {
	store       store.Store
	logger      *zap.Logger
	version     string
	environment string
	startedAt   time.Time
}

func NewMetricsService(p MetricsServiceParams) MetricsService {
	return &MetricsServiceImpl{
		store:       p.Store,
		logger:      p.Logger,
		version:     p.Version,
		environment: p.Environment,
		startedAt:   time.Now(),
	}
}

// SystemMetrics computes the four metric groups concurrently. Each group
// degrades to its zero state on failure without failing the others; the
// overall health escalates to critical only on a database error.
func (s *MetricsServiceImpl) SystemMetrics(ctx context.Context) SystemMetrics {
	var (
		wg       sync.WaitGroup
		database DatabaseMetrics
		gps      GPSMetrics
		projects ProjectMetrics
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		database = s.databaseMetrics(ctx)
	}()

	go func() {
		defer wg.Done()
		activity, err := s.store.GPSActivity(ctx)
		if err != nil {
			s.logger.Error("failed to compute GPS metrics", zap.Error(err))
			return
		}
		gps = GPSMetrics{
			ActiveTrackers: activity.ActiveTrackers,
			EntriesLast24h: activity.EntriesLast24h,
			LastUpdate:     activity.LastEntry,
		}
	}()

	go func() {
		defer wg.Done()
		rollup, err := s.store.ProjectRollup(ctx)
		if err != nil {
			s.logger.Error("failed to compute project metrics", zap.Error(err))
			return
		}
		projects = ProjectMetrics{
			ActiveProjects:    rollup.ActiveProjects,
			CompletedProjects: rollup.CompletedProjects,
			TotalBudget:       rollup.TotalBudget,
			TotalSpent:        rollup.TotalSpent,
			AverageProgress:   rollup.AverageProgress,
		}
	}()

	wg.Wait()

	health := models.HealthHealthy
	switch database.Status {
	case models.HealthError:
		health = models.HealthCritical
	case models.HealthWarning:
		health = models.HealthWarning
	}

	return SystemMetrics{
		Health:   health,
		Database: database,
		GPS:      gps,
		Projects: projects,
		System: ProcessMetrics{
			UptimeMs:        time.Since(s.startedAt).Milliseconds(),
			Version:         s.version,
			Environment:     s.environment,
			LastHealthCheck: time.Now().UTC(),
		},
	}
}

func (s *MetricsServiceImpl) databaseMetrics(ctx context.Context) DatabaseMetrics {
	stats := s.store.DatabaseStats(ctx)

	metrics := DatabaseMetrics{
		Status:                stats.Status,
		ConnectionTimeMs:      float64(stats.ConnectionTime.Microseconds()) / 1000,
		TotalProjects:         stats.TotalProjects,
		TotalUsers:            stats.TotalUsers,
		TotalGPSEntries:       stats.TotalGPSEntries,
		TotalFinancialEntries: stats.TotalFinancialEntries,
	}

	if stats.Status != models.HealthError {
		lastBackup := time.Now().Add(-6 * time.Hour)
		metrics.LastBackup = &lastBackup
	} else {
		metrics.ConnectionTimeMs = -1
	}

	return metrics
}

func (s *MetricsServiceImpl) DatabaseStatus(ctx context.Context) DatabaseStatusReport {
	stats := s.store.DatabaseStats(ctx)

	dataSource := "mock"
	if s.store.Persistent() {
		dataSource = "postgres"
	}

	message := "Database connection established"
	switch stats.Status {
	case models.HealthWarning:
		message = "Database responding slowly"
	case models.HealthError:
		message = "Database connection failed"
	}

	return DatabaseStatusReport{
		Status:           stats.Status,
		DataSource:       dataSource,
		Message:          message,
		ConnectionTimeMs: float64(stats.ConnectionTime.Microseconds()) / 1000,
		Counts: map[string]int64{
			"projects":         stats.TotalProjects,
			"users":            stats.TotalUsers,
			"gpsEntries":       stats.TotalGPSEntries,
			"financialEntries": stats.TotalFinancialEntries,
		},
	}
}

var backupTables = []string{
	"users", "projects", "gps_entries", "financial_entries",
	"provinces", "work_types", "contractors",
}

// Backup simulates a backup run; there is no real dump pipeline behind
// it, the report shape is what the dashboard consumes.
func (s *MetricsServiceImpl) Backup(ctx context.Context) BackupReport {
	now := time.Now().UTC()
	report := BackupReport{
		ID:              fmt.Sprintf("backup_%d", now.UnixMilli()),
		Timestamp:       now,
		Status:          "completed",
		Tables:          backupTables,
		DurationSeconds: 90,
	}

	s.logger.Info("database backup completed", zap.String("backup_id", report.ID))
	return report
}

func (s *MetricsServiceImpl) HealthCheck(ctx context.Context) HealthReport {
	stats := s.store.DatabaseStats(ctx)

	tracking := "idle"
	if activity, err := s.store.GPSActivity(ctx); err == nil && activity.ActiveTrackers > 0 {
		tracking = "active"
	}

	checks := map[string]string{
		"database":     string(stats.Status),
		"apiEndpoints": string(models.HealthHealthy),
		"gpsTracking":  tracking,
	}

	overall := models.HealthHealthy
	if stats.Status != models.HealthHealthy {
		overall = models.HealthWarning
	}

	return HealthReport{
		Checks:        checks,
		OverallStatus: overall,
		Timestamp:     time.Now().UTC(),
	}
}
