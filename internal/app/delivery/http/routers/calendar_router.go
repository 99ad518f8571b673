package routers

import (
	"healthcal-service/internal/app/delivery/http/controllers"
	"healthcal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCalendarRoutes(router chi.Router, mutationLimiter *middlewares.RateLimiter, calendarController *controllers.CalendarController) {
	router.Get("/days/{date}", calendarController.GetDay)
	router.With(mutationLimiter.Limit).Post("/days/{date}/export", calendarController.ExportDay)
}
