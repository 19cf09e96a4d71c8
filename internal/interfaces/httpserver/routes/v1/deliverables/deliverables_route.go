package deliverables

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/identity"
	"portal-server/internal/interfaces/httpserver/handlers/deliverablehandler"
	"portal-server/internal/interfaces/httpserver/middlewares"
)

// DeliverablesRoute handles /v1/deliverables routes
type DeliverablesRoute struct {
	deliverableHandler *deliverablehandler.DeliverableHandler
	logger             zerolog.Logger
}

// NewDeliverablesRoute constructs a new deliverables route handler
func NewDeliverablesRoute(deliverableHandler *deliverablehandler.DeliverableHandler, logger zerolog.Logger) *DeliverablesRoute {
	return &DeliverablesRoute{deliverableHandler: deliverableHandler, logger: logger}
}

// RegisterRouter registers deliverable routes
func (r *DeliverablesRoute) RegisterRouter(router gin.IRouter) {
	deliverablesGroup := router.Group("/deliverables")
	deliverablesGroup.Use(middlewares.RequireCapability(identity.CapabilityViewDeliverables, r.logger))
	{
		deliverablesGroup.GET("", r.deliverableHandler.List)
		deliverablesGroup.GET("/:id", r.deliverableHandler.Get)
	}
}
