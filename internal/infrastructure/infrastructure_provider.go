package infrastructure

import (
	"context"
	"net/http"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"portal-server/internal/config"
	"portal-server/internal/domain/identity"
	"portal-server/internal/infrastructure/auth"
	"portal-server/internal/infrastructure/crontab"
	"portal-server/internal/infrastructure/database"
	"portal-server/internal/infrastructure/database/repository"
	"portal-server/internal/infrastructure/keycloak"
	"portal-server/internal/infrastructure/logger"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideKeycloakClient provides the IdP admin client used as the claims
// synchronization side channel.
func ProvideKeycloakClient(cfg *config.Config, log zerolog.Logger) *keycloak.Client {
	return keycloak.NewClient(
		cfg.KeycloakBaseURL,
		cfg.KeycloakRealm,
		cfg.BackendClientID,
		cfg.BackendClientSecret,
		cfg.ClaimsSyncTimeout,
		&http.Client{},
		log,
	)
}

// ProvideSideChannel exposes the keycloak client under its domain interface.
func ProvideSideChannel(client *keycloak.Client) identity.SideChannel {
	return client
}

// ProvideSessionValidator provides a JWT session validator
func ProvideSessionValidator(cfg *config.Config, log zerolog.Logger) (*auth.SessionValidator, error) {
	return auth.NewSessionValidator(
		context.Background(),
		cfg.JWKSURL,
		cfg.Issuer,
		cfg.Audience,
		cfg.RefreshJWKSInterval,
		cfg.AuthClockSkew,
		log,
	)
}

// ProvideDatabase provides a database connection
func ProvideDatabase(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.NewDB(cfg.GetDatabaseWriteDSN(), cfg.GetDatabaseReadDSNs())
	if err != nil {
		return nil, err
	}

	// Run migrations if AUTO_MIGRATE is enabled
	if cfg.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := database.AutoMigrate(db); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return nil, err
		}
		log.Info().Msg("Database migrations completed successfully")
	}

	return db, nil
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	DB               *gorm.DB
	SessionValidator *auth.SessionValidator
	Logger           zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(
	db *gorm.DB,
	sessionValidator *auth.SessionValidator,
	logger zerolog.Logger,
) *Infrastructure {
	return &Infrastructure{
		DB:               db,
		SessionValidator: sessionValidator,
		Logger:           logger,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Database
	ProvideDatabase,

	// Repositories
	repository.RepositoryProvider,

	// Logger
	logger.GetLogger,

	// Keycloak
	ProvideKeycloakClient,
	ProvideSideChannel,
	ProvideSessionValidator,

	// Crontab for notification retention
	crontab.NewCrontab,

	// Infrastructure struct
	NewInfrastructure,
)
