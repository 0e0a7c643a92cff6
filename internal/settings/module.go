package settings

import (
	"go.uber.org/fx"

	"github.com/polkiloo/mentorcrm/internal/config"
	"github.com/polkiloo/mentorcrm/internal/domain/repository"
	"github.com/polkiloo/mentorcrm/internal/synchronizer"
)

// Module provides the settings store and exposes it as the synchronizer's endpoint source.
var Module = fx.Provide(
	newStore,
	func(s *Store) synchronizer.EndpointSource { return s },
)

type storeParams struct {
	fx.In

	Config *config.Config
	Repo   repository.SettingsRepository
}

func newStore(p storeParams) *Store {
	return NewStore(p.Repo, p.Config.Endpoints)
}
