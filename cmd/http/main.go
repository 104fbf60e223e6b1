package main

import (
	"consultorio-service/internal/app/config"
	"consultorio-service/internal/app/delivery/http/controllers"
	"consultorio-service/internal/app/delivery/http/middlewares"
	"consultorio-service/internal/app/delivery/http/routers"
	"consultorio-service/internal/app/drivers/database"
	"consultorio-service/internal/app/drivers/logger"
	"consultorio-service/internal/app/services/consultations"
	"consultorio-service/internal/app/services/medics"
	"consultorio-service/internal/app/services/patients"
	"consultorio-service/internal/app/services/shared/redis"
	"consultorio-service/internal/app/services/shared/session"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Remote data service
	supabaseClient := database.NewSupabaseClient(bootstrap.DriverConfig)

	// Session store
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, sessionService, bootstrap.InternalConfig)

	// Patient
	patientSupabaseClient := patients.NewPatientSupabaseClient(supabaseClient, bootstrap.ZapLogger)
	patientUsecase := patients.NewPatientUsecase(patientSupabaseClient, bootstrap.ZapLogger)
	patientController := controllers.NewPatientController(bootstrap.ZapLogger, patientUsecase)

	// Medic
	medicSupabaseClient := medics.NewMedicSupabaseClient(supabaseClient, bootstrap.ZapLogger)
	medicUsecase := medics.NewMedicUsecase(medicSupabaseClient, sessionService, bootstrap.InternalConfig, bootstrap.ZapLogger)
	medicController := controllers.NewMedicController(bootstrap.ZapLogger, medicUsecase)

	// Consultation
	consultationSupabaseClient := consultations.NewConsultationSupabaseClient(supabaseClient, bootstrap.ZapLogger)
	consultationUsecase := consultations.NewConsultationUsecase(consultationSupabaseClient, bootstrap.ZapLogger)
	consultationController := controllers.NewConsultationController(bootstrap.ZapLogger, consultationUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		patientController,
		medicController,
		consultationController,
	)
}
