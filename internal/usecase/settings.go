package usecase

import (
	"context"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

// SettingsStore persists endpoints and funnel stages.
type SettingsStore interface {
	Settings
	SetEndpoints(ctx context.Context, endpoints model.Endpoints) (model.Endpoints, error)
	AddStage(ctx context.Context, name string) ([]string, error)
	RemoveStage(ctx context.Context, name string) ([]string, error)
}

// SettingsUseCase guards admin-only settings and resyncs after endpoint changes.
type SettingsUseCase struct {
	store     SettingsStore
	scheduler Scheduler
}

// NewSettingsUseCase constructs SettingsUseCase.
func NewSettingsUseCase(store SettingsStore, scheduler Scheduler) *SettingsUseCase {
	return &SettingsUseCase{store: store, scheduler: scheduler}
}

// Endpoints returns the effective record store URLs.
func (u *SettingsUseCase) Endpoints(ctx context.Context, actor model.Operator) (model.Endpoints, error) {
	if err := requirePrivileged(actor); err != nil {
		return model.Endpoints{}, err
	}
	return u.store.Endpoints(ctx)
}

// SetEndpoints stores new URLs and triggers an immediate resync.
func (u *SettingsUseCase) SetEndpoints(ctx context.Context, actor model.Operator, endpoints model.Endpoints) (model.Endpoints, error) {
	if err := requirePrivileged(actor); err != nil {
		return model.Endpoints{}, err
	}
	saved, err := u.store.SetEndpoints(ctx, endpoints)
	if err != nil {
		return model.Endpoints{}, err
	}
	if u.scheduler != nil {
		u.scheduler.Schedule(0)
	}
	return saved, nil
}

// Stages lists the funnel stages; every operator may read them.
func (u *SettingsUseCase) Stages(ctx context.Context) ([]string, error) {
	return u.store.Stages(ctx)
}

// AddStage appends a funnel stage.
func (u *SettingsUseCase) AddStage(ctx context.Context, actor model.Operator, name string) ([]string, error) {
	if err := requirePrivileged(actor); err != nil {
		return nil, err
	}
	return u.store.AddStage(ctx, name)
}

// RemoveStage deletes a funnel stage.
func (u *SettingsUseCase) RemoveStage(ctx context.Context, actor model.Operator, name string) ([]string, error) {
	if err := requirePrivileged(actor); err != nil {
		return nil, err
	}
	return u.store.RemoveStage(ctx, name)
}
