package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-server/internal/config"
	authvalidator "portal-server/internal/infrastructure/auth"
	"portal-server/internal/interfaces/httpserver/routes/v1/admin"
	"portal-server/internal/interfaces/httpserver/routes/v1/deliverables"
	"portal-server/internal/interfaces/httpserver/routes/v1/me"
	"portal-server/internal/interfaces/httpserver/routes/v1/notifications"
	"portal-server/internal/interfaces/httpserver/routes/v1/partners"
)

type V1Route struct {
	me            *me.MeRoute
	partners      *partners.PartnersRoute
	deliverables  *deliverables.DeliverablesRoute
	notifications *notifications.NotificationsRoute
	adminRoute    *admin.AdminRoute
	validator     *authvalidator.SessionValidator
}

func NewV1Route(
	me *me.MeRoute,
	partners *partners.PartnersRoute,
	deliverables *deliverables.DeliverablesRoute,
	notifications *notifications.NotificationsRoute,
	adminRoute *admin.AdminRoute,
	validator *authvalidator.SessionValidator,
) *V1Route {
	return &V1Route{
		me,
		partners,
		deliverables,
		notifications,
		adminRoute,
		validator,
	}
}

// RegisterRouter registers the authenticated API surface. The router passed
// in already carries the session and identity middleware chain.
func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")

	v1Route.me.RegisterRouter(v1Router)
	v1Route.partners.RegisterRouter(v1Router)
	v1Route.deliverables.RegisterRouter(v1Router)
	v1Route.notifications.RegisterRouter(v1Router)
	v1Route.adminRoute.RegisterRouter(v1Router)
}

// RegisterPublicRouter registers endpoints that do not require authentication
func (v1Route *V1Route) RegisterPublicRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)

	router.GET("/healthz", GetHealthz)
	router.GET("/readyz", v1Route.GetReadyz)
}

// GetVersion returns the current build version and environment reload time.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":         config.Version,
		"env_reloaded_at": config.GetGlobal().EnvReloadedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetHealthz reports liveness for orchestrators and monitoring.
func GetHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadyz reports readiness to accept traffic. The server is not ready
// until a JWKS key set has been fetched: without one every bearer token
// would be rejected.
func (v1Route *V1Route) GetReadyz(c *gin.Context) {
	if !v1Route.validator.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
