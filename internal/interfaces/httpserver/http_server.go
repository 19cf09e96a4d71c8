package httpserver

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"portal-server/internal/config"
	"portal-server/internal/domain/identity"
	"portal-server/internal/infrastructure"
	middleware "portal-server/internal/interfaces/httpserver/middlewares"
	v1 "portal-server/internal/interfaces/httpserver/routes/v1"
)

type HTTPServer struct {
	engine          *gin.Engine
	infra           *infrastructure.Infrastructure
	v1Route         *v1.V1Route
	identityService *identity.Service
	config          *config.Config
}

func NewHttpServer(
	v1Route *v1.V1Route,
	identityService *identity.Service,
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := HTTPServer{
		gin.New(),
		infra,
		v1Route,
		identityService,
		cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(infra.Logger))
	server.engine.Use(middleware.CORSMiddleware())
	server.engine.Use(middleware.MetricsMiddleware())
	return &server
}

func (httpServer *HTTPServer) Run() error {
	// Public routes (no auth required)
	root := httpServer.engine.Group("/")

	// Protected routes: session validation, then identity resolution. Every
	// handler past this chain sees an effective context.
	protected := httpServer.engine.Group("/")
	protected.Use(
		middleware.SessionAuth(httpServer.infra.SessionValidator, httpServer.infra.Logger),
		middleware.IdentityContext(httpServer.identityService, httpServer.config.ViewAsQueryParam, httpServer.infra.Logger),
	)

	httpServer.v1Route.RegisterPublicRouter(root)
	httpServer.v1Route.RegisterRouter(protected)

	if err := httpServer.engine.Run(fmt.Sprintf(":%d", httpServer.config.HTTPPort)); err != nil {
		return err
	}
	return nil
}
