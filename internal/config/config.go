package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Version is the build version, overridden at link time.
var Version = "dev"

// Global singleton shared with wire providers and init-time consumers.
var globalConfig *Config

// Config holds all environment backed configuration for portal-api.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"9091"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// Keycloak / Auth
	KeycloakBaseURL     string        `env:"KEYCLOAK_BASE_URL,notEmpty"`
	KeycloakRealm       string        `env:"KEYCLOAK_REALM" envDefault:"portal"`
	BackendClientID     string        `env:"BACKEND_CLIENT_ID,notEmpty"`
	BackendClientSecret string        `env:"BACKEND_CLIENT_SECRET,notEmpty"`
	JWKSURL             string        `env:"JWKS_URL,notEmpty"`
	Issuer              string        `env:"ISSUER,notEmpty"`
	Audience            string        `env:"AUDIENCE,notEmpty"`
	RefreshJWKSInterval time.Duration `env:"JWKS_REFRESH_INTERVAL" envDefault:"5m"`
	AuthClockSkew       time.Duration `env:"AUTH_CLOCK_SKEW" envDefault:"30s"`

	// Super identity recovery override. Matches by token subject or,
	// case-insensitively, by email. Bypasses claims and the identity store.
	SuperAdminSubject string `env:"SUPERADMIN_SUBJECT"`
	SuperAdminEmail   string `env:"SUPERADMIN_EMAIL"`

	// Claims synchronizer
	ClaimsSyncTimeout time.Duration `env:"CLAIMS_SYNC_TIMEOUT" envDefault:"10s"`

	// Impersonation
	ViewAsQueryParam string `env:"VIEW_AS_QUERY_PARAM" envDefault:"viewAs"`

	// Session resolution cache
	SessionCacheSize int `env:"SESSION_CACHE_SIZE" envDefault:"4096"`

	// PostgreSQL read replica (optional)
	DBPostgresqlRead1DSN string `env:"DB_POSTGRESQL_READ1_DSN"`

	// Notification retention sweep
	NotificationSweepSchedule string `env:"NOTIFICATION_SWEEP_SCHEDULE" envDefault:"0 * * * *"`

	// Observability / Logging
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string        `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"portal-api"`
	ServiceNamespace string        `env:"SERVICE_NAMESPACE" envDefault:"portal"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"true"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.JWKSURL); err != nil {
		return nil, fmt.Errorf("invalid JWKS_URL: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.KeycloakBaseURL); err != nil {
		return nil, fmt.Errorf("invalid KEYCLOAK_BASE_URL: %w", err)
	}

	cfg.SuperAdminEmail = strings.ToLower(strings.TrimSpace(cfg.SuperAdminEmail))
	cfg.SuperAdminSubject = strings.TrimSpace(cfg.SuperAdminSubject)

	if cfg.SessionCacheSize <= 0 {
		return nil, errors.New("SESSION_CACHE_SIZE must be positive")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalConfig = cfg
	return cfg, nil
}

// GetGlobal returns the last loaded configuration, or nil when Load has not run.
func GetGlobal() *Config {
	return globalConfig
}

// GetDatabaseWriteDSN returns the primary (write) DSN.
func (c *Config) GetDatabaseWriteDSN() string {
	return c.DatabaseURL
}

// GetDatabaseReadDSNs returns optional read replica DSNs.
func (c *Config) GetDatabaseReadDSNs() []string {
	if strings.TrimSpace(c.DBPostgresqlRead1DSN) == "" {
		return nil
	}
	return []string{c.DBPostgresqlRead1DSN}
}
