package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/mentorcrm/internal/adapter/sheets"
	"github.com/polkiloo/mentorcrm/internal/app"
	"github.com/polkiloo/mentorcrm/internal/config"
	"github.com/polkiloo/mentorcrm/internal/logger"
	"github.com/polkiloo/mentorcrm/internal/pkg/auth"
	"github.com/polkiloo/mentorcrm/internal/realtime"
	"github.com/polkiloo/mentorcrm/internal/server/http/handlers"
	"github.com/polkiloo/mentorcrm/internal/server/http/router"
	"github.com/polkiloo/mentorcrm/internal/settings"
	"github.com/polkiloo/mentorcrm/internal/state"
	"github.com/polkiloo/mentorcrm/internal/storage"
	"github.com/polkiloo/mentorcrm/internal/synchronizer"
	"github.com/polkiloo/mentorcrm/internal/usecase"
	"github.com/polkiloo/mentorcrm/internal/worker"
)

// Module assembles the application graph. opts are appended last so tests
// can replace any component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		settings.Module,
		sheets.Module,
		state.Module,
		synchronizer.Module,
		worker.Module,
		usecase.Module,
		realtime.Module,
		fx.Provide(
			func(f *app.CRMFacade) handlers.CRMFacade { return f },
			func(h *realtime.Hub) handlers.StreamServer { return h },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
