package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/apperr"
	"github.com/doworks-png/road-monitor/internal/models"
	"github.com/doworks-png/road-monitor/internal/store"
)

// CreateFinancialInput is the payload for financial entry creation.
// Amount is a pointer so a missing amount is not mistaken for zero.
type CreateFinancialInput struct {
	ProjectID     string     `json:"projectId"`
	UserID        string     `json:"userId"`
	Category      string     `json:"category"`
	Type          string     `json:"type"`
	Amount        *float64   `json:"amount"`
	Description   string     `json:"description"`
	Date          *time.Time `json:"date"`
	InvoiceNumber string     `json:"invoiceNumber"`
	Vendor        string     `json:"vendor"`
	IsApproved    bool       `json:"isApproved"`
	Currency      string     `json:"currency"`
	ExchangeRate  float64    `json:"exchangeRate"`
}

// FinancialService defines the interface for financial entry operations
type FinancialService interface {
	List(ctx context.Context, projectID string) ([]models.FinancialEntry, error)
	Create(ctx context.Context, input CreateFinancialInput) (*models.FinancialEntry, error)
}

// FinancialServiceImpl implements FinancialService interface
type FinancialServiceImpl struct {
	store  store.Store
	logger *zap.Logger
}

// NewFinancialService creates a new instance of FinancialService
func NewFinancialService(s store.Store, logger *zap.Logger) FinancialService {
	return &FinancialServiceImpl{
		store:  s,
		logger: logger,
	}
}

func (s *FinancialServiceImpl) List(ctx context.Context, projectID string) ([]models.FinancialEntry, error) {
	entries, err := s.store.ListFinancialEntries(ctx, projectID)
	if err != nil {
		return nil, apperr.Internal("failed to fetch financial entries", err)
	}
	return entries, nil
}

func parseCategory(raw string) (models.FinancialCategoryEnum, bool) {
	for _, c := range models.FinancialCategories {
		if models.FinancialCategoryEnum(raw) == c {
			return c, true
		}
	}
	return "", false
}

func parseFinancialType(raw string) (models.FinancialTypeEnum, bool) {
	for _, t := range models.FinancialTypes {
		if models.FinancialTypeEnum(raw) == t {
			return t, true
		}
	}
	return "", false
}

func categoryNames() string {
	names := make([]string, 0, len(models.FinancialCategories))
	for _, c := range models.FinancialCategories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func typeNames() string {
	names := make([]string, 0, len(models.FinancialTypes))
	for _, t := range models.FinancialTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func (s *FinancialServiceImpl) Create(ctx context.Context, input CreateFinancialInput) (*models.FinancialEntry, error) {
	if input.ProjectID == "" || input.UserID == "" || input.Category == "" ||
		input.Type == "" || input.Amount == nil || input.Description == "" {
		return nil, apperr.Validation("missing required fields: projectId, userId, category, type, amount, description")
	}
	if *input.Amount <= 0 {
		return nil, apperr.Validation("amount must be a valid positive number")
	}

	category, ok := parseCategory(input.Category)
	if !ok {
		return nil, apperr.Validation("invalid category %q, must be one of: %s", input.Category, categoryNames())
	}

	finType, ok := parseFinancialType(input.Type)
	if !ok {
		return nil, apperr.Validation("invalid type %q, must be one of: %s", input.Type, typeNames())
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	currency := input.Currency
	if currency == "" {
		currency = "PGK"
	}
	exchangeRate := input.ExchangeRate
	if exchangeRate == 0 {
		exchangeRate = 1.0
	}

	entry := &models.FinancialEntry{
		ID:            uuid.New().String(),
		ProjectID:     input.ProjectID,
		UserID:        input.UserID,
		Category:      category,
		Type:          finType,
		Amount:        *input.Amount,
		Description:   input.Description,
		Date:          date,
		InvoiceNumber: input.InvoiceNumber,
		Vendor:        input.Vendor,
		IsApproved:    input.IsApproved,
		Currency:      currency,
		ExchangeRate:  exchangeRate,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.CreateFinancialEntry(ctx, entry); err != nil {
		return nil, apperr.Internal("failed to create financial entry", err)
	}

	s.logger.Info("financial entry created",
		zap.String("entry_id", entry.ID),
		zap.String("project_id", entry.ProjectID),
		zap.Float64("amount", entry.Amount))
	return entry, nil
}
