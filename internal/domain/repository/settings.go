package repository

import (
	"context"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

// SettingsRepository persists runtime-editable configuration.
type SettingsRepository interface {
	LoadEndpoints(ctx context.Context) (model.Endpoints, bool, error)
	SaveEndpoints(ctx context.Context, endpoints model.Endpoints) error
	LoadStages(ctx context.Context) ([]string, bool, error)
	SaveStages(ctx context.Context, stages []string) error
}
