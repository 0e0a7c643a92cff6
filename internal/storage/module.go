package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/mentorcrm/internal/config"
	"github.com/polkiloo/mentorcrm/internal/domain/repository"
	"github.com/polkiloo/mentorcrm/internal/storage/memory"
	"github.com/polkiloo/mentorcrm/internal/storage/postgres"
)

// Module provides the settings repository: PostgreSQL when DATABASE_URI is set,
// process memory otherwise.
var Module = fx.Provide(newSettingsRepository)

type storageParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Context   context.Context `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

var connectPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (*postgres.Storage, error) {
	return postgres.New(ctx, dsn, logger)
}

func newSettingsRepository(p storageParams) (repository.SettingsRepository, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("settings kept in memory")
		return memory.New(), nil
	}

	ctx := p.Context
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := connectPostgres(ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := st.HealthCheck(ctx); err != nil {
				return fmt.Errorf("settings database unreachable: %w", err)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			st.Close()
			return nil
		},
	})

	return st, nil
}
