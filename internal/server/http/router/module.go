package router

import "go.uber.org/fx"

// Module provides the gin engine serving the /api surface.
var Module = fx.Provide(Setup)
