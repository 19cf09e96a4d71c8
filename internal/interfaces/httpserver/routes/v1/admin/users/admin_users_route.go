package users

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/identity"
	"portal-server/internal/interfaces/httpserver/handlers/adminuserhandler"
	"portal-server/internal/interfaces/httpserver/middlewares"
)

// AdminUsersRoute handles /v1/admin/users routes
type AdminUsersRoute struct {
	userHandler *adminuserhandler.AdminUserHandler
	logger      zerolog.Logger
}

// NewAdminUsersRoute constructs a new admin users route handler
func NewAdminUsersRoute(userHandler *adminuserhandler.AdminUserHandler, logger zerolog.Logger) *AdminUsersRoute {
	return &AdminUsersRoute{userHandler: userHandler, logger: logger}
}

// RegisterRouter registers user provisioning routes under /admin
func (r *AdminUsersRoute) RegisterRouter(router gin.IRouter) {
	usersGroup := router.Group("/users")
	usersGroup.Use(middlewares.RequireCapability(identity.CapabilityManageUsers, r.logger))
	{
		usersGroup.GET("", r.userHandler.List)
		usersGroup.POST("", r.userHandler.Create)
		usersGroup.GET("/:id", r.userHandler.Get)
		usersGroup.PUT("/:id", r.userHandler.Update)
	}
}
