package notifications

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/identity"
	"portal-server/internal/interfaces/httpserver/handlers/notificationhandler"
	"portal-server/internal/interfaces/httpserver/middlewares"
)

// NotificationsRoute handles /v1/notifications routes
type NotificationsRoute struct {
	notificationHandler *notificationhandler.NotificationHandler
	logger              zerolog.Logger
}

// NewNotificationsRoute constructs a new notifications route handler
func NewNotificationsRoute(notificationHandler *notificationhandler.NotificationHandler, logger zerolog.Logger) *NotificationsRoute {
	return &NotificationsRoute{notificationHandler: notificationHandler, logger: logger}
}

// RegisterRouter registers notification feed routes
func (r *NotificationsRoute) RegisterRouter(router gin.IRouter) {
	notificationsGroup := router.Group("/notifications")
	notificationsGroup.Use(middlewares.RequireCapability(identity.CapabilityViewNotifications, r.logger))
	{
		notificationsGroup.GET("", r.notificationHandler.Feed)
	}
}
