package store

import (
	"context"
	"sync"
	"time"

	"github.com/doworks-png/road-monitor/internal/models"
)

// Demo figures reported by the in-memory store's database metric group.
// They mirror what the dashboard advertises when running without a
// database and are intentionally independent of the live collections.
const (
	demoTotalProjects         = 15
	demoTotalUsers            = 8
	demoTotalGPSEntries       = 1247
	demoTotalFinancialEntries = 423
	demoConnectionTime        = 12 * time.Millisecond
)

// MemoryStore is the mock backend: mutex-guarded collections seeded from
// fixtures. Mutations are visible for the life of the process only.
type MemoryStore struct {
	mu sync.RWMutex

	provinces   []models.Province
	users       []models.User
	workTypes   []models.WorkType
	contractors []models.Contractor
	projects    []models.Project
	gpsEntries  []models.GPSEntry
	finEntries  []models.FinancialEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		provinces:   DemoProvinces(),
		users:       DemoUsers(),
		workTypes:   WorkTypeCatalog(),
		contractors: ContractorCatalog(),
		projects:    DemoProjects(),
		gpsEntries:  DemoGPSEntries(),
		finEntries:  DemoFinancialEntries(),
	}
}

func (s *MemoryStore) Persistent() bool {
	return false
}

// decorate returns a copy of p with its province and manager references
// resolved against the reference collections. Callers hold s.mu.
func (s *MemoryStore) decorate(p models.Project) models.Project {
	out := p
	for i := range s.provinces {
		if s.provinces[i].ID == p.ProvinceID {
			prov := s.provinces[i]
			out.Province = &prov
			break
		}
	}
	for i := range s.users {
		if s.users[i].ID == p.ManagerID {
			mgr := s.users[i]
			out.Manager = &mgr
			break
		}
	}
	return out
}

func (s *MemoryStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, s.decorate(p))
	}
	return out, nil
}

func (s *MemoryStore) GetProject(ctx context.Context, id string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			out := s.decorate(p)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateProject(ctx context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = append(s.projects, *project)
	return nil
}

func (s *MemoryStore) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Location != nil {
			p.Location = *patch.Location
		}
		if patch.ProvinceID != nil {
			p.ProvinceID = *patch.ProvinceID
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Progress != nil {
			p.Progress = *patch.Progress
		}
		if patch.Budget != nil {
			p.Budget = *patch.Budget
		}
		if patch.Spent != nil {
			p.Spent = *patch.Spent
		}
		if patch.StartDate != nil {
			p.StartDate = patch.StartDate
		}
		if patch.EndDate != nil {
			p.EndDate = patch.EndDate
		}
		if patch.Contractor != nil {
			p.Contractor = *patch.Contractor
		}
		if patch.ManagerID != nil {
			p.ManagerID = *patch.ManagerID
		}
		if patch.FundingSource != nil {
			p.FundingSource = *patch.FundingSource
		}
		p.UpdatedAt = time.Now().UTC()

		out := s.decorate(*p)
		return &out, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			// No cascade: the project's gps and financial entries keep
			// their dangling references, matching the mock behavior.
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) ListGPSEntries(ctx context.Context, filter GPSFilter) ([]models.GPSEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.GPSEntry, 0, len(s.gpsEntries))
	for _, e := range s.gpsEntries {
		if filter.ProjectID != "" && e.ProjectID != filter.ProjectID {
			continue
		}
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		if !filter.Since.IsZero() && e.Timestamp.Before(filter.Since) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *MemoryStore) CreateGPSEntry(ctx context.Context, entry *models.GPSEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gpsEntries = append(s.gpsEntries, *entry)
	return nil
}

func (s *MemoryStore) ListFinancialEntries(ctx context.Context, projectID string) ([]models.FinancialEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FinancialEntry, 0, len(s.finEntries))
	for _, e := range s.finEntries {
		if projectID != "" && e.ProjectID != projectID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *MemoryStore) CreateFinancialEntry(ctx context.Context, entry *models.FinancialEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.finEntries = append(s.finEntries, *entry)
	return nil
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...), nil
}

func (s *MemoryStore) ListProvinces(ctx context.Context) ([]models.Province, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Province(nil), s.provinces...), nil
}

func (s *MemoryStore) GetProvince(ctx context.Context, id string) (*models.Province, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.provinces {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListWorkTypes(ctx context.Context) ([]models.WorkType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.WorkType(nil), s.workTypes...), nil
}

func (s *MemoryStore) ListContractors(ctx context.Context) ([]models.Contractor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Contractor(nil), s.contractors...), nil
}

func (s *MemoryStore) DatabaseStats(ctx context.Context) DatabaseStats {
	return DatabaseStats{
		Status:                models.HealthHealthy,
		ConnectionTime:        demoConnectionTime,
		TotalProjects:         demoTotalProjects,
		TotalUsers:            demoTotalUsers,
		TotalGPSEntries:       demoTotalGPSEntries,
		TotalFinancialEntries: demoTotalFinancialEntries,
	}
}

func (s *MemoryStore) GPSActivity(ctx context.Context) (GPSActivity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	last24h := now.Add(-24 * time.Hour)
	last30min := now.Add(-30 * time.Minute)

	activity := GPSActivity{}
	recentUsers := make(map[string]struct{})
	for _, e := range s.gpsEntries {
		if !e.Timestamp.Before(last24h) {
			activity.EntriesLast24h++
		}
		if !e.Timestamp.Before(last30min) {
			recentUsers[e.UserID] = struct{}{}
		}
		if activity.LastEntry == nil || e.Timestamp.After(*activity.LastEntry) {
			t := e.Timestamp
			activity.LastEntry = &t
		}
	}
	activity.ActiveTrackers = int64(len(recentUsers))
	return activity, nil
}

func (s *MemoryStore) ProjectRollup(ctx context.Context) (ProjectRollup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rollup := ProjectRollup{}
	progressSum := 0
	for _, p := range s.projects {
		switch p.Status {
		case models.ProjectStatusActive:
			rollup.ActiveProjects++
		case models.ProjectStatusCompleted:
			rollup.CompletedProjects++
		}
		rollup.TotalBudget += p.Budget
		rollup.TotalSpent += p.Spent
		progressSum += p.Progress
	}
	if n := len(s.projects); n > 0 {
		rollup.AverageProgress = float64(progressSum) / float64(n)
	}
	return rollup, nil
}
