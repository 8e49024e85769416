package components

import (
	"price-in-time/internal/infra/readstore"
	repo_impl "price-in-time/internal/infra/repository"
	"price-in-time/internal/usecase/commands"
	"price-in-time/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewSlotConfigRepository,
			fx.As(new(commands.SlotConfigRepository)),
		),
		fx.Annotate(
			repo_impl.NewPriceRowRepository,
			fx.As(new(commands.PriceRowRepository)),
		),
		// Read-side store for queries
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
	),
)
