package routers

import (
	"consultorio-service/internal/app/delivery/http/controllers"
	"consultorio-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMedicRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicController *controllers.MedicController) {
	router.With(middlewares.Authenticate).Get("/profile", medicController.GetProfile)
	router.With(middlewares.Authenticate).Put("/profile", medicController.SaveProfile)
}
