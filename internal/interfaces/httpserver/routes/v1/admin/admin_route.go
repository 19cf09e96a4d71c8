package admin

import (
	"github.com/gin-gonic/gin"

	"portal-server/internal/interfaces/httpserver/routes/v1/admin/ops"
	"portal-server/internal/interfaces/httpserver/routes/v1/admin/users"
)

// AdminRoute aggregates all admin sub-routes
type AdminRoute struct {
	adminUsersRoute *users.AdminUsersRoute
	adminOpsRoute   *ops.AdminOpsRoute
}

// NewAdminRoute creates a new AdminRoute
func NewAdminRoute(
	adminUsersRoute *users.AdminUsersRoute,
	adminOpsRoute *ops.AdminOpsRoute,
) *AdminRoute {
	return &AdminRoute{
		adminUsersRoute: adminUsersRoute,
		adminOpsRoute:   adminOpsRoute,
	}
}

// RegisterRouter registers admin routes under /admin prefix
func (r *AdminRoute) RegisterRouter(router gin.IRouter) {
	adminGroup := router.Group("/admin")
	{
		r.adminUsersRoute.RegisterRouter(adminGroup)
		r.adminOpsRoute.RegisterRouter(adminGroup)
	}
}
