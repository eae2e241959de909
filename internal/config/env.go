package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetList splits a comma separated variable, dropping blank entries.
func GetList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// Environment variable keys
const (
	EnvPort        = "PORT"
	EnvGinMode     = "GIN_MODE"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvCORSOrigins = "CORS_ALLOWED_ORIGINS"
	EnvFrontend    = "FRONTEND_INDEX"

	EnvReadTimeout     = "HTTP_READ_TIMEOUT"
	EnvWriteTimeout    = "HTTP_WRITE_TIMEOUT"
	EnvIdleTimeout     = "HTTP_IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvDatabaseURL   = "DATABASE_URL"
	EnvDBHost        = "DB_HOST"
	EnvDBPort        = "DB_PORT"
	EnvDBUser        = "DB_USERNAME"
	EnvDBPassword    = "DB_PASSWORD"
	EnvDBName        = "DB_DATABASE"
	EnvDBSSLMode     = "DB_SSLMODE"
	EnvDBAdminUser   = "DB_ADMIN_USER"
	EnvDBAdminPass   = "DB_ADMIN_PASSWORD"
	EnvDBMaxConns    = "DB_MAX_CONNS"
	EnvDBMinConns    = "DB_MIN_CONNS"
	EnvRunMigrations = "RUN_MIGRATIONS"
)
