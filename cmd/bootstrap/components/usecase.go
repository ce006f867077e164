package components

import (
	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/pkg/clock"
	"gaming-zone-booking/internal/pkg/config"
	"gaming-zone-booking/internal/pkg/jwt"
	"gaming-zone-booking/internal/pkg/password"
	"gaming-zone-booking/internal/usecase"
	"gaming-zone-booking/internal/usecase/commands"
	"gaming-zone-booking/internal/usecase/queries"
	"gaming-zone-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(cfg config.Config) *booking.DefaultPriceCalculator {
			return booking.NewDefaultPriceCalculator(cfg.Booking.MaxDurationHours)
		},
		fx.As(new(booking.PriceCalculator)),
	),
	NewAvailabilityEngine,
	func(clk clock.Clock, calc booking.PriceCalculator, engine *booking.AvailabilityEngine, cfg config.Config) *booking.Services {
		return &booking.Services{
			Clock:           clk,
			PriceCalculator: calc,
			Availability:    engine,
			Policy: booking.Policy{
				MaxDuration:  cfg.Booking.MaxDurationHours,
				AdvanceDays:  cfg.Booking.AdvanceDays,
				Cancellation: booking.NewCancellationPolicy(cfg.Booking.CancellationCutoff),
			},
		}
	},
	fx.Annotate(
		password.NewHasher,
		fx.As(new(commands.PasswordHasher)),
	),
)

func NewAvailabilityEngine(cfg config.Config) (*booking.AvailabilityEngine, error) {
	grid, err := booking.NewGrid(cfg.Booking.OpenHour, cfg.Booking.CloseHour)
	if err != nil {
		return nil, err
	}
	return booking.NewAvailabilityEngine(grid, cfg.Booking.Location()), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewCatalogUseCase,
		commands.NewUserUseCase,
	),
)

func NewAuthCommands(uow shared.UnitOfWork, hasher commands.PasswordHasher, tokens *jwt.Service, clk clock.Clock) commands.AuthCommands {
	return commands.NewAuthCommands(uow, hasher, tokens, tokens.TokenDuration(), clk)
}

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
