package bootstrap

import (
	"gaming-zone-booking/internal/pkg/metrics"
	"gaming-zone-booking/internal/usecase/commands"
	"gaming-zone-booking/internal/usecase/queries"
	"gaming-zone-booking/internal/worker"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(commands.BookingRecorder)),
			fx.As(new(queries.CacheRecorder)),
			fx.As(new(worker.NotificationRecorder)),
		),
	),
)
