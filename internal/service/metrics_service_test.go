package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/models"
	"github.com/doworks-png/road-monitor/internal/store"
)

// faultyStore wraps the in-memory store and fails selected metric
// queries.
type faultyStore struct {
	*store.MemoryStore

	failGPS    bool
	failRollup bool
	failStats  bool
}

func (f *faultyStore) GPSActivity(ctx context.Context) (store.GPSActivity, error) {
	if f.failGPS {
		return store.GPSActivity{}, errors.New("gps query failed")
	}
	return f.MemoryStore.GPSActivity(ctx)
}

func (f *faultyStore) ProjectRollup(ctx context.Context) (store.ProjectRollup, error) {
	if f.failRollup {
		return store.ProjectRollup{}, errors.New("rollup query failed")
	}
	return f.MemoryStore.ProjectRollup(ctx)
}

func (f *faultyStore) DatabaseStats(ctx context.Context) store.DatabaseStats {
	if f.failStats {
		return store.DatabaseStats{Status: models.HealthError, ConnectionTime: -1}
	}
	return f.MemoryStore.DatabaseStats(ctx)
}

func newMetricsService(s store.Store) MetricsService {
	return NewMetricsService(MetricsServiceParams{
		Store:       s,
		Logger:      zap.NewNop(),
		Version:     "1.0.0-test",
		Environment: "test",
	})
}

func TestSystemMetricsMockStore(t *testing.T) {
	svc := newMetricsService(store.NewMemoryStore())

	m := svc.SystemMetrics(context.Background())
	if m.Health != models.HealthHealthy {
		t.Errorf("expected healthy, got %s", m.Health)
	}
	if m.Database.TotalProjects != 15 {
		t.Errorf("expected demo project count 15, got %d", m.Database.TotalProjects)
	}
	if m.Database.LastBackup == nil {
		t.Error("expected a last backup timestamp")
	}
	if m.Projects.ActiveProjects != 3 {
		t.Errorf("expected 3 active projects, got %d", m.Projects.ActiveProjects)
	}
	if m.Projects.AverageProgress != 34.2 {
		t.Errorf("expected average progress 34.2, got %f", m.Projects.AverageProgress)
	}
	if m.System.Version != "1.0.0-test" || m.System.Environment != "test" {
		t.Errorf("unexpected process metrics: %+v", m.System)
	}
	if m.System.UptimeMs < 0 {
		t.Errorf("negative uptime %d", m.System.UptimeMs)
	}
}

func TestSystemMetricsGPSFailureIsIsolated(t *testing.T) {
	svc := newMetricsService(&faultyStore{MemoryStore: store.NewMemoryStore(), failGPS: true})

	m := svc.SystemMetrics(context.Background())
	if m.GPS != (GPSMetrics{}) {
		t.Errorf("expected zeroed gps metrics, got %+v", m.GPS)
	}
	if m.Database.TotalProjects != 15 {
		t.Errorf("database group must survive gps failure, got %+v", m.Database)
	}
	if m.Health != models.HealthHealthy {
		t.Errorf("gps failure must not degrade overall health, got %s", m.Health)
	}
}

func TestSystemMetricsRollupFailureIsIsolated(t *testing.T) {
	svc := newMetricsService(&faultyStore{MemoryStore: store.NewMemoryStore(), failRollup: true})

	m := svc.SystemMetrics(context.Background())
	if m.Projects != (ProjectMetrics{}) {
		t.Errorf("expected zeroed project metrics, got %+v", m.Projects)
	}
	if m.Health != models.HealthHealthy {
		t.Errorf("rollup failure must not degrade overall health, got %s", m.Health)
	}
}

func TestSystemMetricsDatabaseErrorIsCritical(t *testing.T) {
	svc := newMetricsService(&faultyStore{MemoryStore: store.NewMemoryStore(), failStats: true})

	m := svc.SystemMetrics(context.Background())
	if m.Health != models.HealthCritical {
		t.Errorf("expected critical health, got %s", m.Health)
	}
	if m.Database.ConnectionTimeMs != -1 {
		t.Errorf("expected sentinel connection time, got %f", m.Database.ConnectionTimeMs)
	}
	if m.Database.LastBackup != nil {
		t.Error("expected no last backup on database error")
	}
	if m.Database.TotalProjects != 0 {
		t.Errorf("expected zeroed counts, got %d", m.Database.TotalProjects)
	}
}

func TestDatabaseStatusMock(t *testing.T) {
	svc := newMetricsService(store.NewMemoryStore())

	report := svc.DatabaseStatus(context.Background())
	if report.DataSource != "mock" {
		t.Errorf("expected mock data source, got %q", report.DataSource)
	}
	if report.Status != models.HealthHealthy {
		t.Errorf("expected healthy, got %s", report.Status)
	}
	if report.Counts["projects"] != 15 || report.Counts["gpsEntries"] != 1247 {
		t.Errorf("unexpected counts: %+v", report.Counts)
	}
}

func TestDatabaseStatusError(t *testing.T) {
	svc := newMetricsService(&faultyStore{MemoryStore: store.NewMemoryStore(), failStats: true})

	report := svc.DatabaseStatus(context.Background())
	if report.Status != models.HealthError {
		t.Errorf("expected error status, got %s", report.Status)
	}
	if report.Message != "Database connection failed" {
		t.Errorf("unexpected message %q", report.Message)
	}
}

func TestBackupReport(t *testing.T) {
	svc := newMetricsService(store.NewMemoryStore())

	report := svc.Backup(context.Background())
	if report.Status != "completed" {
		t.Errorf("expected completed, got %q", report.Status)
	}
	if len(report.Tables) != 7 {
		t.Errorf("expected 7 tables, got %d", len(report.Tables))
	}
	if report.ID == "" || report.Timestamp.IsZero() {
		t.Errorf("incomplete report: %+v", report)
	}
}

func TestHealthCheck(t *testing.T) {
	svc := newMetricsService(store.NewMemoryStore())

	report := svc.HealthCheck(context.Background())
	if report.OverallStatus != models.HealthHealthy {
		t.Errorf("expected healthy overall, got %s", report.OverallStatus)
	}
	if report.Checks["database"] != string(models.HealthHealthy) {
		t.Errorf("unexpected database check %q", report.Checks["database"])
	}
	if time.Since(report.Timestamp) > time.Minute {
		t.Errorf("stale timestamp %v", report.Timestamp)
	}
}

func TestHealthCheckDegraded(t *testing.T) {
	svc := newMetricsService(&faultyStore{MemoryStore: store.NewMemoryStore(), failStats: true})

	report := svc.HealthCheck(context.Background())
	if report.OverallStatus != models.HealthWarning {
		t.Errorf("expected warning overall, got %s", report.OverallStatus)
	}
}
