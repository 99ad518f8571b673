package routers

import (
	"healthcal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachClientRoutes(router chi.Router, clientController *controllers.ClientController) {
	router.Get("/", clientController.FindAll)
	router.Get("/{clientId}", clientController.FindByID)
}
