package routers

import (
	"fmt"
	"healthcal-service/internal/app/config"
	"healthcal-service/internal/app/delivery/http/controllers"
	"healthcal-service/internal/app/delivery/http/middlewares"
	"healthcal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	clientController *controllers.ClientController,
	calendarController *controllers.CalendarController,
	callController *controllers.CallController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	generalLimiter, mutationLimiter := middlewares.CreateRateLimiters()
	router.Use(generalLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/clients", func(r chi.Router) {
				attachClientRoutes(r, clientController)
			})

			r.Route("/calendar", func(r chi.Router) {
				attachCalendarRoutes(r, mutationLimiter, calendarController)
			})

			r.Route("/calls", func(r chi.Router) {
				attachCallRoutes(r, mutationLimiter, callController)
			})
		})
	})
}
