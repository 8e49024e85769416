package components

import (
	"price-in-time/internal/handler"
	"price-in-time/internal/handler/api"
	"price-in-time/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotsHandler,
		api.NewPricingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
