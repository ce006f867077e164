package bootstrap

import (
	"time"

	"gaming-zone-booking/internal/pkg/config"
	"gaming-zone-booking/internal/pkg/errs"
	"gaming-zone-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}
	if duration <= 0 {
		return nil, errs.Newf("JWT_DURATION must be positive, got %s", cfg.JWT.Duration)
	}
	return jwt.NewService(cfg.JWT.Secret, duration), nil
}
