package synchronizer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/mentorcrm/internal/domain/repository"
	"github.com/polkiloo/mentorcrm/internal/state"
)

// Module provides the synchronizer.
var Module = fx.Provide(newSynchronizer)

type synchronizerParams struct {
	fx.In

	Reader repository.RecordReader
	Source EndpointSource
	State  *state.State
	Logger *slog.Logger
}

func newSynchronizer(p synchronizerParams) *Synchronizer {
	return New(p.Reader, p.Source, p.State, p.Logger)
}
