package components

import (
	"rentmarket/internal/handler"
	"rentmarket/internal/handler/api"
	"rentmarket/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewConditionCheckHandler,
		api.NewReviewHandler,
		api.NewPricingHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	reservation *api.ReservationHandler,
	conditionCheck *api.ConditionCheckHandler,
	review *api.ReviewHandler,
	pricing *api.PricingHandler,
	notification *api.NotificationHandler,
) handler.Handlers {
	return handler.Handlers{
		Reservation:    reservation,
		ConditionCheck: conditionCheck,
		Review:         review,
		Pricing:        pricing,
		Notification:   notification,
	}
}
