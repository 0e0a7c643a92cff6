package logger

import "go.uber.org/fx"

// Module provides the JSON slog logger configured from *config.Config.
var Module = fx.Provide(New)
