package routers

import (
	"consultorio-service/internal/app/delivery/http/controllers"
	"consultorio-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachConsultationRoutes(router chi.Router, middlewares *middlewares.Middlewares, consultationController *controllers.ConsultationController) {
	router.With(middlewares.Authenticate).Post("/", consultationController.CreateConsultation)
	router.With(middlewares.Authenticate).Get("/", consultationController.ListConsultations)
	router.With(middlewares.Authenticate).Get("/{consultation_id}", consultationController.GetConsultationByID)
}
