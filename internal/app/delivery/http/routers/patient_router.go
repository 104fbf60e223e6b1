package routers

import (
	"consultorio-service/internal/app/delivery/http/controllers"
	"consultorio-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.With(middlewares.Authenticate).Get("/lookup", patientController.LookupPatients)
	router.With(middlewares.Authenticate).Get("/{patient_id}", patientController.GetPatientByID)
	router.With(middlewares.Authenticate).Post("/", patientController.CreatePatient)
}
