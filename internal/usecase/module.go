package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/mentorcrm/internal/config"
	"github.com/polkiloo/mentorcrm/internal/domain/repository"
	"github.com/polkiloo/mentorcrm/internal/settings"
	"github.com/polkiloo/mentorcrm/internal/state"
	"github.com/polkiloo/mentorcrm/internal/worker"
)

// Module provides the mutation gateway and the use cases built on it.
var Module = fx.Provide(
	newGateway,
	newSettingsUseCase,
	NewAuthUseCase,
	NewCustomerUseCase,
	NewTaskUseCase,
	NewProductUseCase,
	NewOperatorUseCase,
	NewOrderUseCase,
)

type gatewayParams struct {
	fx.In

	Config    *config.Config
	Writer    repository.RecordWriter
	State     *state.State
	Settings  *settings.Store
	Scheduler *worker.SyncScheduler
	Logger    *slog.Logger
}

func newGateway(p gatewayParams) *Gateway {
	return NewGateway(
		p.Writer,
		p.State,
		p.Settings,
		p.Scheduler,
		Delays{Status: p.Config.StatusResyncDelay, Task: p.Config.TaskResyncDelay},
		p.Config.Location(),
		p.Logger,
	)
}

type settingsParams struct {
	fx.In

	Settings  *settings.Store
	Scheduler *worker.SyncScheduler
}

func newSettingsUseCase(p settingsParams) *SettingsUseCase {
	return NewSettingsUseCase(p.Settings, p.Scheduler)
}
