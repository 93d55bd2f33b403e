package components

import (
	"rental-core/internal/domain/booking"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewProRataPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewTransitionCommands,
		commands.NewPaymentCommands,
		commands.NewRemovalCommands,
		commands.NewMaintenanceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPropertyQueries,
		queries.NewBookingQueries,
		queries.NewDealQueries,
		queries.NewContractQueries,
		queries.NewPaymentQueries,
	),
)
