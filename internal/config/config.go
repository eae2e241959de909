package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

type DatabaseConfig struct {
	URL           string
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	SSLMode       string
	AdminUser     string
	AdminPassword string
	MaxConns      int32
	MinConns      int32
}

type Config struct {
	Port            int
	GinMode         string
	LogLevel        string
	LogFormat       string
	CORSOrigins     []string
	FrontendIndex   string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	RunMigrations   bool
	Database        DatabaseConfig
}

// Load reads the configuration from the process environment. Callers that
// want .env support load it with godotenv before calling Load.
func Load() *Config {
	return &Config{
		Port:            GetInt(EnvPort, 5000),
		GinMode:         GetEnv(EnvGinMode, "release"),
		LogLevel:        GetEnv(EnvLogLevel, "info"),
		LogFormat:       GetEnv(EnvLogFormat, "json"),
		CORSOrigins:     GetList(EnvCORSOrigins, []string{"*"}),
		FrontendIndex:   GetEnv(EnvFrontend, ""),
		ReadTimeout:     GetDuration(EnvReadTimeout, 10*time.Second),
		WriteTimeout:    GetDuration(EnvWriteTimeout, 30*time.Second),
		IdleTimeout:     GetDuration(EnvIdleTimeout, time.Minute),
		ShutdownTimeout: GetDuration(EnvShutdownTimeout, 5*time.Second),
		RunMigrations:   GetBool(EnvRunMigrations, true),
		Database: DatabaseConfig{
			URL:           GetEnv(EnvDatabaseURL, ""),
			Host:          GetEnv(EnvDBHost, "localhost"),
			Port:          GetEnv(EnvDBPort, "5432"),
			User:          GetEnv(EnvDBUser, ""),
			Password:      GetEnv(EnvDBPassword, ""),
			Name:          GetEnv(EnvDBName, "hostel_mess_db"),
			SSLMode:       GetEnv(EnvDBSSLMode, "disable"),
			AdminUser:     GetEnv(EnvDBAdminUser, ""),
			AdminPassword: GetEnv(EnvDBAdminPass, ""),
			MaxConns:      int32(GetInt(EnvDBMaxConns, 10)),
			MinConns:      int32(GetInt(EnvDBMinConns, 0)),
		},
	}
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid %s: %d", EnvPort, c.Port)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid %s: %q", EnvGinMode, c.GinMode)
	}
	if c.Database.URL != "" {
		return nil
	}
	if c.Database.User == "" {
		return fmt.Errorf("%s or %s environment variable is required", EnvDatabaseURL, EnvDBUser)
	}
	if c.Database.Name == "" {
		return errors.New(EnvDBName + " environment variable is required")
	}
	return nil
}

// DSN returns the postgres:// connection string for the application database.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return d.dsnFor(url.UserPassword(d.User, d.Password), d.Name)
}

// AdminDSN points at the maintenance "postgres" database using the admin
// credentials, falling back to the application user.
func (d DatabaseConfig) AdminDSN() string {
	user, password := d.AdminUser, d.AdminPassword
	if user == "" {
		user, password = d.User, d.Password
	}
	return d.dsnFor(url.UserPassword(user, password), "postgres")
}

// Redacted is safe to log.
func (d DatabaseConfig) Redacted() string {
	if d.URL != "" {
		u, err := url.Parse(d.URL)
		if err != nil {
			return "postgres://***"
		}
		return u.Redacted()
	}
	return fmt.Sprintf("postgres://%s:***@%s:%s/%s", d.User, d.Host, d.Port, d.Name)
}

func (d DatabaseConfig) dsnFor(userInfo *url.Userinfo, database string) string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=%s",
		userInfo.String(),
		d.Host,
		d.Port,
		url.PathEscape(database),
		sslMode,
	)
}
