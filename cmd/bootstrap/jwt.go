package bootstrap

import (
	"rentmarket/internal/handler/middleware"
	"rentmarket/internal/pkg/config"
	"rentmarket/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewTokenValidator,
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewTokenValidator(cfg config.Config) *jwt.SubjectValidator {
	return jwt.NewSubjectValidator(cfg.JWT.Secret)
}
