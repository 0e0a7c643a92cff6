package realtime

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/mentorcrm/internal/config"
)

// Module provides the websocket hub. Its run loop is started by the app lifecycle.
var Module = fx.Provide(newHub)

type hubParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newHub(p hubParams) *Hub {
	return NewHub(p.Config.CORSOrigins, p.Logger)
}
