package partners

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/identity"
	"portal-server/internal/interfaces/httpserver/handlers/partnerhandler"
	"portal-server/internal/interfaces/httpserver/middlewares"
)

// PartnersRoute handles /v1/partners routes
type PartnersRoute struct {
	partnerHandler *partnerhandler.PartnerHandler
	logger         zerolog.Logger
}

// NewPartnersRoute constructs a new partners route handler
func NewPartnersRoute(partnerHandler *partnerhandler.PartnerHandler, logger zerolog.Logger) *PartnersRoute {
	return &PartnersRoute{partnerHandler: partnerHandler, logger: logger}
}

// RegisterRouter registers partner directory routes. The directory is an
// administrative surface; partner-role callers are denied.
func (r *PartnersRoute) RegisterRouter(router gin.IRouter) {
	partnersGroup := router.Group("/partners")
	partnersGroup.Use(middlewares.RequireCapability(identity.CapabilityViewPartners, r.logger))
	{
		partnersGroup.GET("", r.partnerHandler.List)
		partnersGroup.GET("/:id", r.partnerHandler.Get)
	}
}
