package notificationhandler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/notification"
	"portal-server/internal/interfaces/httpserver/middlewares"
	"portal-server/internal/utils/platformerrors"
)

// NotificationHandler serves the per-tenant notification feed.
type NotificationHandler struct {
	service *notification.Service
	logger  zerolog.Logger
}

// NewNotificationHandler constructs a new handler instance.
func NewNotificationHandler(service *notification.Service, logger zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{service: service, logger: logger}
}

// NotificationResponse represents a notification on the feed.
type NotificationResponse struct {
	ID         string          `json:"id"`
	PartnerID  *string         `json:"partner_id"`
	Title      string          `json:"title"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	ExpiresAt  *int64          `json:"expires_at,omitempty"`
	CreatedAt  int64           `json:"created_at"`
	FleetWide  bool            `json:"fleet_wide"`
}

// NotificationListResponse wraps the feed.
type NotificationListResponse struct {
	Data  []NotificationResponse `json:"data"`
	Total int                    `json:"total"`
}

func toNotificationResponse(n *notification.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Payload:   n.Payload,
		CreatedAt: n.CreatedAt.Unix(),
		FleetWide: n.PartnerID == nil,
	}
	if n.PartnerID != nil {
		s := n.PartnerID.String()
		resp.PartnerID = &s
	}
	if n.ExpiresAt != nil {
		exp := n.ExpiresAt.Unix()
		resp.ExpiresAt = &exp
	}
	return resp
}

// Feed handles GET /v1/notifications
func (h *NotificationHandler) Feed(c *gin.Context) {
	ec, ok := middlewares.EffectiveContextFromContext(c)
	if !ok {
		platformerrors.WriteAccessDenied(c)
		return
	}

	notifications, err := h.service.Feed(c.Request.Context(), ec)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list notifications")
		platformerrors.WriteError(c, err, h.logger)
		return
	}

	data := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		data = append(data, toNotificationResponse(&notifications[i]))
	}
	c.JSON(http.StatusOK, NotificationListResponse{Data: data, Total: len(data)})
}
