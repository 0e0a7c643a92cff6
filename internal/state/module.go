package state

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/mentorcrm/internal/config"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/override"
)

// Module provides the shared application state.
var Module = fx.Provide(newState)

type stateParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newState(p stateParams) *State {
	return New(override.New(p.Config.OverrideMaxCycles, model.OrderStatus.Equal), p.Logger)
}
