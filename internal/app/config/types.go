package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Logger         *logrus.Logger
		ZapLogger      *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		Supabase Supabase
		Redis    Redis
		Logger   Logger
	}

	InternalConfig struct {
		App App
		JWT JWT
	}

	// Supabase holds the two values the remote client handle is built
	// from. Neither is validated here; a bad key only surfaces when a
	// query is attempted.
	Supabase struct {
		URL    string
		APIKey string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	App struct {
		Env                            string
		Port                           string
		Version                        string
		EndpointPrefix                 string
		Timezone                       string
		MaxRequests                    int
		ShutdownTimeoutInSeconds       int
		SignUpMaxRequestsPerMinute     int
		SignUpBlockTimeInMinutes       int
		LoginSessionExpiredTimeInHours int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
