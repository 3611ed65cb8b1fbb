package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/doworks-png/road-monitor/internal/models"
)

// Latency above this threshold degrades the database status to warning.
const slowConnectionThreshold = time.Second

// DBStore is the relational backend over gorm.
type DBStore struct {
	db *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Persistent() bool {
	return true
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// attachChildCounts fills the derived gps/financial entry counts for a
// set of projects with one grouped query per child table.
func (s *DBStore) attachChildCounts(ctx context.Context, projects []models.Project) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]string, 0, len(projects))
	index := make(map[string]*models.Project, len(projects))
	for i := range projects {
		ids = append(ids, projects[i].ID)
		index[projects[i].ID] = &projects[i]
	}

	type countRow struct {
		ProjectID string `gorm:"column:project_id"`
		Count     int64  `gorm:"column:count"`
	}

	var gpsCounts []countRow
	if err := s.db.WithContext(ctx).Model(&models.GPSEntry{}).
		Select("project_id, COUNT(*) as count").
		Where("project_id IN ?", ids).
		Group("project_id").
		Find(&gpsCounts).Error; err != nil {
		return err
	}
	for _, row := range gpsCounts {
		if p, ok := index[row.ProjectID]; ok {
			p.GPSEntryCount = row.Count
		}
	}

	var finCounts []countRow
	if err := s.db.WithContext(ctx).Model(&models.FinancialEntry{}).
		Select("project_id, COUNT(*) as count").
		Where("project_id IN ?", ids).
		Group("project_id").
		Find(&finCounts).Error; err != nil {
		return err
	}
	for _, row := range finCounts {
		if p, ok := index[row.ProjectID]; ok {
			p.FinancialEntryCount = row.Count
		}
	}

	return nil
}

func (s *DBStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.WithContext(ctx).
		Preload("Province").
		Preload("Manager").
		Order("created_at").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	if err := s.attachChildCounts(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *DBStore) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).
		Preload("Province").
		Preload("Manager").
		Where("id = ?", id).
		First(&project).Error; err != nil {
		return nil, translate(err)
	}

	projects := []models.Project{project}
	if err := s.attachChildCounts(ctx, projects); err != nil {
		return nil, err
	}
	return &projects[0], nil
}

func (s *DBStore) CreateProject(ctx context.Context, project *models.Project) error {
	return s.db.WithContext(ctx).Create(project).Error
}

func (patch ProjectPatch) changes() map[string]any {
	changes := map[string]any{}
	if patch.Name != nil {
		changes["name"] = *patch.Name
	}
	if patch.Description != nil {
		changes["description"] = *patch.Description
	}
	if patch.Location != nil {
		changes["location"] = *patch.Location
	}
	if patch.ProvinceID != nil {
		changes["province_id"] = *patch.ProvinceID
	}
	if patch.Status != nil {
		changes["status"] = *patch.Status
	}
	if patch.Progress != nil {
		changes["progress"] = *patch.Progress
	}
	if patch.Budget != nil {
		changes["budget"] = *patch.Budget
	}
	if patch.Spent != nil {
		changes["spent"] = *patch.Spent
	}
	if patch.StartDate != nil {
		changes["start_date"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		changes["end_date"] = *patch.EndDate
	}
	if patch.Contractor != nil {
		changes["contractor"] = *patch.Contractor
	}
	if patch.ManagerID != nil {
		changes["manager_id"] = *patch.ManagerID
	}
	if patch.FundingSource != nil {
		changes["funding_source"] = *patch.FundingSource
	}
	return changes
}

func (s *DBStore) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*models.Project, error) {
	var existing models.Project
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&existing).Error; err != nil {
		return nil, translate(err)
	}

	if changes := patch.changes(); len(changes) > 0 {
		if err := s.db.WithContext(ctx).Model(&existing).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	return s.GetProject(ctx, id)
}

func (s *DBStore) DeleteProject(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DBStore) ListGPSEntries(ctx context.Context, filter GPSFilter) ([]models.GPSEntry, error) {
	query := s.db.WithContext(ctx).Model(&models.GPSEntry{}).Order("timestamp desc")
	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if !filter.Since.IsZero() {
		query = query.Where("timestamp >= ?", filter.Since)
	}

	var entries []models.GPSEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *DBStore) CreateGPSEntry(ctx context.Context, entry *models.GPSEntry) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *DBStore) ListFinancialEntries(ctx context.Context, projectID string) ([]models.FinancialEntry, error) {
	query := s.db.WithContext(ctx).Model(&models.FinancialEntry{}).Order("date desc")
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	var entries []models.FinancialEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *DBStore) CreateFinancialEntry(ctx context.Context, entry *models.FinancialEntry) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *DBStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *DBStore) ListProvinces(ctx context.Context) ([]models.Province, error) {
	var provinces []models.Province
	if err := s.db.WithContext(ctx).Order("name").Find(&provinces).Error; err != nil {
		return nil, err
	}
	return provinces, nil
}

func (s *DBStore) GetProvince(ctx context.Context, id string) (*models.Province, error) {
	var province models.Province
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&province).Error; err != nil {
		return nil, translate(err)
	}
	return &province, nil
}

func (s *DBStore) ListWorkTypes(ctx context.Context) ([]models.WorkType, error) {
	var workTypes []models.WorkType
	if err := s.db.WithContext(ctx).Order("name").Find(&workTypes).Error; err != nil {
		return nil, err
	}
	return workTypes, nil
}

func (s *DBStore) ListContractors(ctx context.Context) ([]models.Contractor, error) {
	var contractors []models.Contractor
	if err := s.db.WithContext(ctx).Order("name").Find(&contractors).Error; err != nil {
		return nil, err
	}
	return contractors, nil
}

// DatabaseStats counts every entity table and grades the backend by how
// long the counts took: under a second is healthy, slower is a warning,
// and a failed query reports status error with zeroed counts.
func (s *DBStore) DatabaseStats(ctx context.Context) DatabaseStats {
	start := time.Now()

	var projects, users, gps, financial int64
	err := s.db.WithContext(ctx).Model(&models.Project{}).Count(&projects).Error
	if err == nil {
		err = s.db.WithContext(ctx).Model(&models.User{}).Count(&users).Error
	}
	if err == nil {
		err = s.db.WithContext(ctx).Model(&models.GPSEntry{}).Count(&gps).Error
	}
	if err == nil {
		err = s.db.WithContext(ctx).Model(&models.FinancialEntry{}).Count(&financial).Error
	}

	elapsed := time.Since(start)
	if err != nil {
		return DatabaseStats{Status: models.HealthError, ConnectionTime: -1}
	}

	status := models.HealthHealthy
	if elapsed >= slowConnectionThreshold {
		status = models.HealthWarning
	}

	return DatabaseStats{
		Status:                status,
		ConnectionTime:        elapsed,
		TotalProjects:         projects,
		TotalUsers:            users,
		TotalGPSEntries:       gps,
		TotalFinancialEntries: financial,
	}
}

func (s *DBStore) GPSActivity(ctx context.Context) (GPSActivity, error) {
	now := time.Now()
	last24h := now.Add(-24 * time.Hour)
	last30min := now.Add(-30 * time.Minute)

	activity := GPSActivity{}

	if err := s.db.WithContext(ctx).Model(&models.GPSEntry{}).
		Where("timestamp >= ?", last24h).
		Count(&activity.EntriesLast24h).Error; err != nil {
		return GPSActivity{}, err
	}

	if err := s.db.WithContext(ctx).Model(&models.GPSEntry{}).
		Where("timestamp >= ?", last30min).
		Distinct("user_id").
		Count(&activity.ActiveTrackers).Error; err != nil {
		return GPSActivity{}, err
	}

	var last models.GPSEntry
	err := s.db.WithContext(ctx).Model(&models.GPSEntry{}).
		Order("timestamp desc").
		First(&last).Error
	switch {
	case err == nil:
		t := last.Timestamp
		activity.LastEntry = &t
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no entries yet
	default:
		return GPSActivity{}, err
	}

	return activity, nil
}

func (s *DBStore) ProjectRollup(ctx context.Context) (ProjectRollup, error) {
	rollup := ProjectRollup{}

	if err := s.db.WithContext(ctx).Model(&models.Project{}).
		Where("status = ?", models.ProjectStatusActive).
		Count(&rollup.ActiveProjects).Error; err != nil {
		return ProjectRollup{}, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Project{}).
		Where("status = ?", models.ProjectStatusCompleted).
		Count(&rollup.CompletedProjects).Error; err != nil {
		return ProjectRollup{}, err
	}

	type row struct {
		Budget   float64
		Spent    float64
		Progress int
	}
	var rows []row
	if err := s.db.WithContext(ctx).Model(&models.Project{}).
		Select("budget, spent, progress").
		Find(&rows).Error; err != nil {
		return ProjectRollup{}, err
	}

	progressSum := 0
	for _, r := range rows {
		rollup.TotalBudget += r.Budget
		rollup.TotalSpent += r.Spent
		progressSum += r.Progress
	}
	if len(rows) > 0 {
		rollup.AverageProgress = float64(progressSum) / float64(len(rows))
	}

	return rollup, nil
}
