package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/mentorcrm/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordVerifier),
	fx.Provide(newTokenStrategy),
)

func newPasswordVerifier() PasswordVerifier {
	return NewBcryptVerifier(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.JWTSecret, Options{})
}
