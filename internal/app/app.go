package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/mentorcrm/internal/config"
	"github.com/polkiloo/mentorcrm/internal/realtime"
	"github.com/polkiloo/mentorcrm/internal/state"
	"github.com/polkiloo/mentorcrm/internal/synchronizer"
	"github.com/polkiloo/mentorcrm/internal/usecase"
	"github.com/polkiloo/mentorcrm/internal/worker"
)

// Module wires the facade, the HTTP server and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newCRMFacade,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

type facadeParams struct {
	fx.In

	Config       *config.Config
	State        *state.State
	Synchronizer *synchronizer.Synchronizer

	Auth      *usecase.AuthUseCase
	Customers *usecase.CustomerUseCase
	Tasks     *usecase.TaskUseCase
	Products  *usecase.ProductUseCase
	Operators *usecase.OperatorUseCase
	Orders    *usecase.OrderUseCase
	Settings  *usecase.SettingsUseCase
}

func newCRMFacade(p facadeParams) *CRMFacade {
	return NewCRMFacade(UseCases{
		Auth:      p.Auth,
		Customers: p.Customers,
		Tasks:     p.Tasks,
		Products:  p.Products,
		Operators: p.Operators,
		Orders:    p.Orders,
		Settings:  p.Settings,
	}, p.State, p.Synchronizer, p.Config.Location())
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Context    context.Context `optional:"true"`
	Logger     *slog.Logger
	Server     *http.Server
	Scheduler  *worker.SyncScheduler
	Hub        *realtime.Hub
	State      *state.State
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	base := p.Context
	if base == nil {
		base = context.Background()
	}
	runCtx, cancel := context.WithCancel(base)
	var unfollow func()

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			p.Logger.Info("starting mentorcrm", slog.String("addr", p.Server.Addr))
			go p.Hub.Run(runCtx)
			unfollow = p.Hub.Follow(p.State)
			p.Scheduler.Start(runCtx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Scheduler.Stop()
			if unfollow != nil {
				unfollow()
			}
			defer cancel()

			shutdownCtx := ctx
			stop := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, stop = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer stop()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("mentorcrm stopped")
			return nil
		},
	})
}
