package routes

import (
	"github.com/google/wire"

	"portal-server/internal/interfaces/httpserver/handlers/adminuserhandler"
	"portal-server/internal/interfaces/httpserver/handlers/contexthandler"
	"portal-server/internal/interfaces/httpserver/handlers/deliverablehandler"
	"portal-server/internal/interfaces/httpserver/handlers/notificationhandler"
	"portal-server/internal/interfaces/httpserver/handlers/opshandler"
	"portal-server/internal/interfaces/httpserver/handlers/partnerhandler"
	v1 "portal-server/internal/interfaces/httpserver/routes/v1"
	"portal-server/internal/interfaces/httpserver/routes/v1/admin"
	adminOps "portal-server/internal/interfaces/httpserver/routes/v1/admin/ops"
	adminUsers "portal-server/internal/interfaces/httpserver/routes/v1/admin/users"
	"portal-server/internal/interfaces/httpserver/routes/v1/deliverables"
	"portal-server/internal/interfaces/httpserver/routes/v1/me"
	"portal-server/internal/interfaces/httpserver/routes/v1/notifications"
	"portal-server/internal/interfaces/httpserver/routes/v1/partners"
)

var RouteProvider = wire.NewSet(
	// Handlers
	contexthandler.NewContextHandler,
	partnerhandler.NewPartnerHandler,
	deliverablehandler.NewDeliverableHandler,
	notificationhandler.NewNotificationHandler,
	adminuserhandler.NewAdminUserHandler,
	opshandler.NewOpsHandler,

	// Routes
	v1.NewV1Route,
	me.NewMeRoute,
	partners.NewPartnersRoute,
	deliverables.NewDeliverablesRoute,
	notifications.NewNotificationsRoute,
	admin.NewAdminRoute,
	adminUsers.NewAdminUsersRoute,
	adminOps.NewAdminOpsRoute,
)
