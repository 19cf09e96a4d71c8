package domain

import (
	"github.com/google/wire"

	"portal-server/internal/config"
	"portal-server/internal/domain/deliverable"
	"portal-server/internal/domain/identity"
	"portal-server/internal/domain/notification"
	"portal-server/internal/domain/partner"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// Identity engine
	ProvideSuperIdentity,
	ProvideResolutionCache,
	identity.NewResolver,
	identity.NewSynchronizer,
	identity.NewService,
	identity.NewProvisioner,

	// Partner directory
	partner.NewService,

	// Deliverables
	deliverable.NewService,

	// Notifications
	notification.NewService,
)

func ProvideSuperIdentity(cfg *config.Config) identity.SuperIdentity {
	return identity.SuperIdentity{
		Subject: cfg.SuperAdminSubject,
		Email:   cfg.SuperAdminEmail,
	}
}

func ProvideResolutionCache(cfg *config.Config) (*identity.ResolutionCache, error) {
	return identity.NewResolutionCache(cfg.SessionCacheSize)
}
