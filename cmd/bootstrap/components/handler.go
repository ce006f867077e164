package components

import (
	"gaming-zone-booking/internal/handler"
	"gaming-zone-booking/internal/handler/api"
	"gaming-zone-booking/internal/handler/middleware"
	"gaming-zone-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewBookingHandler,
		api.NewAdminBookingHandler,
		api.NewAdminCatalogHandler,
		api.NewAdminUserHandler,
		api.NewAdminStatsHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
