package config

import "go.uber.org/fx"

// Module loads .env, environment and flags into *Config for fx graphs.
var Module = fx.Provide(Load)
