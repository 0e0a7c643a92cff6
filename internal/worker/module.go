package worker

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/mentorcrm/internal/config"
	"github.com/polkiloo/mentorcrm/internal/synchronizer"
)

// Module provides the resync scheduler.
var Module = fx.Provide(newSyncScheduler)

type schedulerParams struct {
	fx.In

	Config       *config.Config
	Synchronizer *synchronizer.Synchronizer
	Logger       *slog.Logger
}

func newSyncScheduler(p schedulerParams) *SyncScheduler {
	return NewSyncScheduler(p.Synchronizer, p.Config.SyncInterval, p.Logger)
}
