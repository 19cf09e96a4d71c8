package ops

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/identity"
	"portal-server/internal/interfaces/httpserver/handlers/opshandler"
	"portal-server/internal/interfaces/httpserver/middlewares"
)

// AdminOpsRoute handles /v1/admin/ops routes
type AdminOpsRoute struct {
	opsHandler *opshandler.OpsHandler
	logger     zerolog.Logger
}

// NewAdminOpsRoute constructs a new admin ops route handler
func NewAdminOpsRoute(opsHandler *opshandler.OpsHandler, logger zerolog.Logger) *AdminOpsRoute {
	return &AdminOpsRoute{opsHandler: opsHandler, logger: logger}
}

// RegisterRouter registers fleet operation routes under /admin. The guard
// hides this whole group from impersonated sessions.
func (r *AdminOpsRoute) RegisterRouter(router gin.IRouter) {
	opsGroup := router.Group("/ops")
	opsGroup.Use(middlewares.RequireCapability(identity.CapabilityFleetOperations, r.logger))
	{
		opsGroup.POST("/broadcast", r.opsHandler.Broadcast)
		opsGroup.GET("/overview", r.opsHandler.Overview)
	}
}
