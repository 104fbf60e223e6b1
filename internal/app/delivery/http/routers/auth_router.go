package routers

import (
	"consultorio-service/internal/app/delivery/http/controllers"
	"consultorio-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, m *middlewares.Middlewares, signUpLimiter *middlewares.RateLimiter, medicController *controllers.MedicController) {
	router.With(signUpLimiter.Limit).Post("/signup", medicController.SignUp)
	router.With(signUpLimiter.Limit).Post("/login", medicController.SignIn)
	router.With(m.Authenticate).Post("/logout", medicController.Logout)
}
