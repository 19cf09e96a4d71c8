package me

import (
	"github.com/gin-gonic/gin"

	"portal-server/internal/interfaces/httpserver/handlers/contexthandler"
)

// MeRoute handles /v1/me routes
type MeRoute struct {
	contextHandler *contexthandler.ContextHandler
}

// NewMeRoute constructs a new me route handler
func NewMeRoute(contextHandler *contexthandler.ContextHandler) *MeRoute {
	return &MeRoute{contextHandler: contextHandler}
}

// RegisterRouter registers the caller-context routes
func (r *MeRoute) RegisterRouter(router gin.IRouter) {
	meGroup := router.Group("/me")
	{
		meGroup.GET("/context", r.contextHandler.GetContext)
	}
}
