package components

import (
	"price-in-time/internal/pkg/clock"
	"price-in-time/internal/pkg/idgen"
	"price-in-time/internal/usecase/commands"
	"price-in-time/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	idgen.NewRandomGenerator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSlotCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewPricingQueries,
		queries.NewOrderQueries,
	),
)
