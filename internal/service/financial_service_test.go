package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/apperr"
	"github.com/doworks-png/road-monitor/internal/store"
)

func amount(v float64) *float64 { return &v }

func validFinancialInput() CreateFinancialInput {
	return CreateFinancialInput{
		ProjectID:   "proj-1",
		UserID:      "user-4",
		Category:    "MATERIALS",
		Type:        "EXPENSE",
		Amount:      amount(50000),
		Description: "Gravel delivery",
	}
}

func TestFinancialCreateValidation(t *testing.T) {
	svc := NewFinancialService(store.NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*CreateFinancialInput)
	}{
		{"missing project", func(in *CreateFinancialInput) { in.ProjectID = "" }},
		{"missing user", func(in *CreateFinancialInput) { in.UserID = "" }},
		{"missing category", func(in *CreateFinancialInput) { in.Category = "" }},
		{"missing type", func(in *CreateFinancialInput) { in.Type = "" }},
		{"missing amount", func(in *CreateFinancialInput) { in.Amount = nil }},
		{"missing description", func(in *CreateFinancialInput) { in.Description = "" }},
		{"zero amount", func(in *CreateFinancialInput) { in.Amount = amount(0) }},
		{"negative amount", func(in *CreateFinancialInput) { in.Amount = amount(-100) }},
		{"unknown category", func(in *CreateFinancialInput) { in.Category = "GIFTS" }},
		{"unknown type", func(in *CreateFinancialInput) { in.Type = "DONATION" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validFinancialInput()
			tt.mutate(&input)
			_, err := svc.Create(ctx, input)
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestFinancialCreateEnumErrorListsAllowedValues(t *testing.T) {
	svc := NewFinancialService(store.NewMemoryStore(), zap.NewNop())

	input := validFinancialInput()
	input.Category = "GIFTS"
	_, err := svc.Create(context.Background(), input)
	if err == nil {
		t.Fatal("expected error")
	}
	if msg := apperr.Message(err); !strings.Contains(msg, "MATERIALS") {
		t.Errorf("expected allowed categories in message, got %q", msg)
	}
}

func TestFinancialCreateDefaults(t *testing.T) {
	svc := NewFinancialService(store.NewMemoryStore(), zap.NewNop())

	entry, err := svc.Create(context.Background(), validFinancialInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if entry.Currency != "PGK" {
		t.Errorf("expected PGK default, got %q", entry.Currency)
	}
	if entry.ExchangeRate != 1.0 {
		t.Errorf("expected exchange rate 1.0, got %f", entry.ExchangeRate)
	}
	if entry.Date.IsZero() {
		t.Error("expected date default")
	}
	if entry.ID == "" {
		t.Error("expected a generated id")
	}
}

func TestFinancialListByProject(t *testing.T) {
	svc := NewFinancialService(store.NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 demo entries, got %d", len(all))
	}

	scoped, err := svc.List(ctx, "proj-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, e := range scoped {
		if e.ProjectID != "proj-1" {
			t.Errorf("entry %s leaked into proj-1 listing", e.ID)
		}
	}
	if len(scoped) != 2 {
		t.Errorf("expected 2 entries for proj-1, got %d", len(scoped))
	}
}
