package sheets

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/mentorcrm/internal/config"
	"github.com/polkiloo/mentorcrm/internal/domain/repository"
)

// Module exposes the record store client to the fx graph.
var Module = fx.Provide(
	newClient,
	func(c Client) repository.RecordReader { return c },
	func(c Client) repository.RecordWriter { return c },
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) Client {
	return NewHTTPClient(Options{
		Timeout:     p.Config.SheetsHTTPTimeout,
		Acknowledge: p.Config.SheetsAcknowledge,
	}, p.Logger)
}
