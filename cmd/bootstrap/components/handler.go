package components

import (
	"gpark/internal/handler"
	"gpark/internal/handler/api"
	"gpark/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSpotHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, spot *api.SpotHandler, booking *api.BookingHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Spot: spot, Booking: booking}
		},
	),
	fx.Invoke(handler.NewRouter),
)
