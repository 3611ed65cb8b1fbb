package service

import (
	"context"

	"github.com/doworks-png/road-monitor/internal/apperr"
	"github.com/doworks-png/road-monitor/internal/models"
	"github.com/doworks-png/road-monitor/internal/store"
)

// ReferenceService serves the read-only reference collections.
type ReferenceService interface {
	Users(ctx context.Context) ([]models.User, error)
	Provinces(ctx context.Context) ([]models.Province, error)
	WorkTypes(ctx context.Context) ([]models.WorkType, error)
	Contractors(ctx context.Context) ([]models.Contractor, error)
}

type ReferenceServiceImpl struct {
	store store.Store
}

func NewReferenceService(s store.Store) ReferenceService {
	return &ReferenceServiceImpl{store: s}
}

func (s *ReferenceServiceImpl) Users(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to fetch users", err)
	}
	return users, nil
}

func (s *ReferenceServiceImpl) Provinces(ctx context.Context) ([]models.Province, error) {
	provinces, err := s.store.ListProvinces(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to fetch provinces", err)
	}
	return provinces, nil
}

func (s *ReferenceServiceImpl) WorkTypes(ctx context.Context) ([]models.WorkType, error) {
	workTypes, err := s.store.ListWorkTypes(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to fetch work types", err)
	}
	return workTypes, nil
}

func (s *ReferenceServiceImpl) Contractors(ctx context.Context) ([]models.Contractor, error) {
	contractors, err := s.store.ListContractors(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to fetch contractors", err)
	}
	return contractors, nil
}
