package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/apperr"
	"github.com/doworks-png/road-monitor/internal/models"
	"github.com/doworks-png/road-monitor/internal/store"
)

func newProjectService() ProjectService {
	return NewProjectService(store.NewMemoryStore(), zap.NewNop())
}

func TestProjectCreateValidation(t *testing.T) {
	svc := newProjectService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateProjectInput
	}{
		{"missing name", CreateProjectInput{Location: "Lae", ProvinceID: "prov-1"}},
		{"blank name", CreateProjectInput{Name: "   ", Location: "Lae", ProvinceID: "prov-1"}},
		{"missing location", CreateProjectInput{Name: "Road", ProvinceID: "prov-1"}},
		{"missing province", CreateProjectInput{Name: "Road", Location: "Lae"}},
		{"unknown province", CreateProjectInput{Name: "Road", Location: "Lae", ProvinceID: "nope"}},
		{"invalid status", CreateProjectInput{Name: "Road", Location: "Lae", ProvinceID: "prov-1", Status: "BOGUS"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("expected validation error, got %v (%s)", err, apperr.KindOf(err))
			}
		})
	}
}

func TestProjectCreateDefaults(t *testing.T) {
	svc := newProjectService()

	project, err := svc.Create(context.Background(), CreateProjectInput{
		Name:       "Kiunga-Tabubil Road",
		Location:   "Western Province",
		ProvinceID: "prov-1",
		Budget:     1000000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if project.ID == "" {
		t.Error("expected a generated id")
	}
	if project.Status != models.ProjectStatusPlanning {
		t.Errorf("expected PLANNING default, got %s", project.Status)
	}
	if project.CreatedAt.IsZero() || project.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	got, err := svc.Get(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("Get after create: %v", err)
	}
	if got.Name != "Kiunga-Tabubil Road" {
		t.Errorf("unexpected name %q", got.Name)
	}
}

func TestProjectGetNotFound(t *testing.T) {
	svc := newProjectService()

	_, err := svc.Get(context.Background(), "missing")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestProjectUpdate(t *testing.T) {
	svc := newProjectService()
	ctx := context.Background()

	name := "Updated Name"
	progress := 75
	project, err := svc.Update(ctx, "proj-1", UpdateProjectInput{Name: &name, Progress: &progress})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if project.Name != "Updated Name" || project.Progress != 75 {
		t.Errorf("patch not applied: %+v", project)
	}

	empty := "  "
	if _, err := svc.Update(ctx, "proj-1", UpdateProjectInput{Name: &empty}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error for blank name, got %v", err)
	}

	bad := models.ProjectStatusEnum("BOGUS")
	if _, err := svc.Update(ctx, "proj-1", UpdateProjectInput{Status: &bad}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error for bad status, got %v", err)
	}

	if _, err := svc.Update(ctx, "missing", UpdateProjectInput{Name: &name}); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestProjectDelete(t *testing.T) {
	svc := newProjectService()
	ctx := context.Background()

	if err := svc.Delete(ctx, "proj-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, "proj-1"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}
