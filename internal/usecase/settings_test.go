package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

func TestSettingsEndpointsRequireAdmin(t *testing.T) {
	f := newFixture(t, testEndpoints)
	uc := NewSettingsUseCase(f.settings, f.scheduler)

	if _, err := uc.Endpoints(context.Background(), operator); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := uc.SetEndpoints(context.Background(), operator, model.Endpoints{}); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	endpoints, err := uc.Endpoints(context.Background(), admin)
	if err != nil || endpoints.Tasks != testEndpoints.Tasks {
		t.Fatalf("unexpected endpoints %+v / %v", endpoints, err)
	}
}

func TestSettingsSetEndpointsTriggersResync(t *testing.T) {
	f := newFixture(t, testEndpoints)
	uc := NewSettingsUseCase(f.settings, f.scheduler)

	saved, err := uc.SetEndpoints(context.Background(), admin, model.Endpoints{Tasks: "https://new/tasks"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Tasks != "https://new/tasks" || saved.Orders != testEndpoints.Orders {
		t.Fatalf("unexpected endpoints %+v", saved)
	}
	if f.scheduler.Count() != 1 || f.scheduler.Delays[0] != 0 {
		t.Fatalf("expected immediate resync, got %v", f.scheduler.Delays)
	}
}

func TestSettingsStages(t *testing.T) {
	f := newFixture(t, testEndpoints)
	uc := NewSettingsUseCase(f.settings, f.scheduler)

	if _, err := uc.AddStage(context.Background(), operator, "Yangi bosqich"); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	stages, err := uc.AddStage(context.Background(), admin, "Yangi bosqich")
	if err != nil || stages[len(stages)-1] != "Yangi bosqich" {
		t.Fatalf("unexpected stages %v / %v", stages, err)
	}
	if _, err := uc.RemoveStage(context.Background(), operator, "Yangi bosqich"); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := uc.RemoveStage(context.Background(), admin, "Yangi bosqich"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listed, err := uc.Stages(context.Background())
	if err != nil || len(listed) != len(model.DefaultStages) {
		t.Fatalf("expected default stages back, got %v / %v", listed, err)
	}
}
