// Package store provides the storage contract for the monitor and its
// two backends: an in-memory demo store seeded with fixture data, and a
// Postgres store via gorm. The backend is chosen once at startup and
// injected; business logic never branches on a mode flag.
package store

import (
	"context"
	"errors"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/doworks-png/road-monitor/internal/models"
)

// ErrNotFound is returned by lookups and mutations targeting an unknown id.
var ErrNotFound = errors.New("record not found")

// GPSFilter narrows GPS entry listings. Zero values mean "no filter".
type GPSFilter struct {
	ProjectID string
	UserID    string
	Since     time.Time
}

// ProjectPatch carries a partial project update. Nil fields are left
// untouched.
type ProjectPatch struct {
	Name          *string
	Description   *string
	Location      *string
	ProvinceID    *string
	Status        *models.ProjectStatusEnum
	Progress      *int
	Budget        *float64
	Spent         *float64
	StartDate     *time.Time
	EndDate       *time.Time
	Contractor    *string
	ManagerID     *string
	FundingSource *models.FundingSourceEnum
}

// DatabaseStats is the database metric group of /api/monitoring.
type DatabaseStats struct {
	Status                models.HealthStatusEnum
	ConnectionTime        time.Duration
	TotalProjects         int64
	TotalUsers            int64
	TotalGPSEntries       int64
	TotalFinancialEntries int64
}

// GPSActivity is the GPS-tracking metric group of /api/monitoring.
type GPSActivity struct {
	EntriesLast24h int64
	ActiveTrackers int64
	LastEntry      *time.Time
}

// ProjectRollup is the project metric group of /api/monitoring.
type ProjectRollup struct {
	ActiveProjects    int64
	CompletedProjects int64
	TotalBudget       float64
	TotalSpent        float64
	AverageProgress   float64
}

// Store is the storage contract shared by both backends.
type Store interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	CreateProject(ctx context.Context, project *models.Project) error
	UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListGPSEntries(ctx context.Context, filter GPSFilter) ([]models.GPSEntry, error)
	CreateGPSEntry(ctx context.Context, entry *models.GPSEntry) error

	ListFinancialEntries(ctx context.Context, projectID string) ([]models.FinancialEntry, error)
	CreateFinancialEntry(ctx context.Context, entry *models.FinancialEntry) error

	ListUsers(ctx context.Context) ([]models.User, error)
	ListProvinces(ctx context.Context) ([]models.Province, error)
	GetProvince(ctx context.Context, id string) (*models.Province, error)
	ListWorkTypes(ctx context.Context) ([]models.WorkType, error)
	ListContractors(ctx context.Context) ([]models.Contractor, error)

	DatabaseStats(ctx context.Context) DatabaseStats
	GPSActivity(ctx context.Context) (GPSActivity, error)
	ProjectRollup(ctx context.Context) (ProjectRollup, error)

	// Persistent reports whether writes survive a process restart. The
	// live tracker records positions as GPS entries only through a
	// persistent store.
	Persistent() bool
}

type Params struct {
	fx.In

	Logger      *zap.Logger
	UseMockData bool   `name:"use_mock_data"`
	DatabaseURL string `name:"database_url"`
}

// NewStore selects and constructs the storage backend. The selection
// happens exactly once, at startup.
func NewStore(p Params) (Store, error) {
	if p.UseMockData {
		p.Logger.Info("using in-memory demo store; mutations are not persisted")
		return NewMemoryStore(), nil
	}

	db, err := gorm.Open(postgres.Open(p.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	p.Logger.Info("connected to database")
	return NewDBStore(db), nil
}

// Migrate creates or updates the schema for every entity table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Province{},
		&models.User{},
		&models.WorkType{},
		&models.Contractor{},
		&models.Project{},
		&models.GPSEntry{},
		&models.FinancialEntry{},
	)
}
