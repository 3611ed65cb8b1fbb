package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/apperr"
	"github.com/doworks-png/road-monitor/internal/models"
	"github.com/doworks-png/road-monitor/internal/store"
)

// CreateProjectInput is the payload for project creation. Name, Location
// and ProvinceID are required; Status defaults to PLANNING.
type CreateProjectInput struct {
	Name          string                    `json:"name"`
	Description   string                    `json:"description"`
	Location      string                    `json:"location"`
	ProvinceID    string                    `json:"provinceId"`
	Status        models.ProjectStatusEnum  `json:"status"`
	Progress      int                       `json:"progress"`
	Budget        float64                   `json:"budget"`
	Spent         float64                   `json:"spent"`
	StartDate     *time.Time                `json:"startDate"`
	EndDate       *time.Time                `json:"endDate"`
	Contractor    string                    `json:"contractor"`
	ManagerID     string                    `json:"managerId"`
	FundingSource models.FundingSourceEnum  `json:"fundingSource"`
}

// UpdateProjectInput is a partial project update; nil fields are left
// untouched.
type UpdateProjectInput struct {
	Name          *string                   `json:"name"`
	Description   *string                   `json:"description"`
	Location      *string                   `json:"location"`
	ProvinceID    *string                   `json:"provinceId"`
	Status        *models.ProjectStatusEnum `json:"status"`
	Progress      *int                      `json:"progress"`
	Budget        *float64                  `json:"budget"`
	Spent         *float64                  `json:"spent"`
	StartDate     *time.Time                `json:"startDate"`
	EndDate       *time.Time                `json:"endDate"`
	Contractor    *string                   `json:"contractor"`
	ManagerID     *string                   `json:"managerId"`
	FundingSource *models.FundingSourceEnum `json:"fundingSource"`
}

// ProjectService defines the interface for project operations
type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*models.Project, error)
	Update(ctx context.Context, id string, input UpdateProjectInput) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

// ProjectServiceImpl implements ProjectService interface
type ProjectServiceImpl struct {
	store  store.Store
	logger *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(s store.Store, logger *zap.Logger) ProjectService {
	return &ProjectServiceImpl{
		store:  s,
		logger: logger,
	}
}

func (s *ProjectServiceImpl) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to fetch projects", err)
	}
	return projects, nil
}

func (s *ProjectServiceImpl) Get(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.store.GetProject(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("project %s not found", id)
	}
	if err != nil {
		return nil, apperr.Internal("failed to fetch project", err)
	}
	return project, nil
}

func validProjectStatus(status models.ProjectStatusEnum) bool {
	switch status {
	case models.ProjectStatusPlanning, models.ProjectStatusActive,
		models.ProjectStatusOnHold, models.ProjectStatusCompleted,
		models.ProjectStatusCancelled:
		return true
	}
	return false
}

func (s *ProjectServiceImpl) Create(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Location) == "" || input.ProvinceID == "" {
		return nil, apperr.Validation("missing required fields: name, location, provinceId")
	}

	if _, err := s.store.GetProvince(ctx, input.ProvinceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Validation("unknown province: %s", input.ProvinceID)
		}
		return nil, apperr.Internal("failed to verify province", err)
	}

	status := input.Status
	if status == "" {
		status = models.ProjectStatusPlanning
	}
	if !validProjectStatus(status) {
		return nil, apperr.Validation("invalid project status: %s", status)
	}

	now := time.Now().UTC()
	project := &models.Project{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Description:   input.Description,
		Location:      input.Location,
		ProvinceID:    input.ProvinceID,
		Status:        status,
		Progress:      input.Progress,
		Budget:        input.Budget,
		Spent:         input.Spent,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Contractor:    input.Contractor,
		ManagerID:     input.ManagerID,
		FundingSource: input.FundingSource,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.CreateProject(ctx, project); err != nil {
		return nil, apperr.Internal("failed to create project", err)
	}

	s.logger.Info("project created",
		zap.String("project_id", project.ID),
		zap.String("name", project.Name))
	return project, nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, id string, input UpdateProjectInput) (*models.Project, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, apperr.Validation("project name cannot be empty")
	}
	if input.Status != nil && !validProjectStatus(*input.Status) {
		return nil, apperr.Validation("invalid project status: %s", *input.Status)
	}

	patch := store.ProjectPatch{
		Name:          input.Name,
		Description:   input.Description,
		Location:      input.Location,
		ProvinceID:    input.ProvinceID,
		Status:        input.Status,
		Progress:      input.Progress,
		Budget:        input.Budget,
		Spent:         input.Spent,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Contractor:    input.Contractor,
		ManagerID:     input.ManagerID,
		FundingSource: input.FundingSource,
	}

	project, err := s.store.UpdateProject(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("project %s not found", id)
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Sprintf("failed to update project %s", id), err)
	}

	return project, nil
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.store.DeleteProject(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("project %s not found", id)
	}
	if err != nil {
		return apperr.Internal(fmt.Sprintf("failed to delete project %s", id), err)
	}

	s.logger.Info("project deleted", zap.String("project_id", id))
	return nil
}
