package routers

import (
	"healthcal-service/internal/app/delivery/http/controllers"
	"healthcal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCallRoutes(router chi.Router, mutationLimiter *middlewares.RateLimiter, callController *controllers.CallController) {
	router.Get("/", callController.ListCalls)

	router.Group(func(r chi.Router) {
		r.Use(mutationLimiter.Limit)
		r.Post("/", callController.BookCall)
		r.Delete("/{kind}/{callId}", callController.DeleteCall)
	})
}
