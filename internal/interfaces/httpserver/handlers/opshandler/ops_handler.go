package opshandler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/deliverable"
	"portal-server/internal/domain/notification"
	"portal-server/internal/domain/partner"
	"portal-server/internal/interfaces/httpserver/requests/opsreq"
	"portal-server/internal/utils/platformerrors"
)

// OpsHandler serves fleet-level operations. Routes mounting it are hidden
// entirely from impersonated sessions.
type OpsHandler struct {
	partnerService      *partner.Service
	deliverableService  *deliverable.Service
	notificationService *notification.Service
	validate            *validator.Validate
	logger              zerolog.Logger
}

// NewOpsHandler constructs a new handler instance.
func NewOpsHandler(
	partnerService *partner.Service,
	deliverableService *deliverable.Service,
	notificationService *notification.Service,
	logger zerolog.Logger,
) *OpsHandler {
	return &OpsHandler{
		partnerService:      partnerService,
		deliverableService:  deliverableService,
		notificationService: notificationService,
		validate:            validator.New(validator.WithRequiredStructEnabled()),
		logger:              logger,
	}
}

// BroadcastResponse represents a published notification.
type BroadcastResponse struct {
	ID        string  `json:"id"`
	PartnerID *string `json:"partner_id,omitempty"`
	Title     string  `json:"title"`
	CreatedAt int64   `json:"created_at"`
}

// OverviewResponse aggregates fleet counters for the operations dashboard.
type OverviewResponse struct {
	Partners            int64            `json:"partners"`
	DeliverablesByState map[string]int64 `json:"deliverables_by_status"`
	ActiveNotifications int64            `json:"active_notifications"`
}

// Broadcast handles POST /v1/admin/ops/broadcast
func (h *OpsHandler) Broadcast(c *gin.Context) {
	var req opsreq.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteValidationError(c, err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		platformerrors.WriteValidationError(c, err.Error())
		return
	}

	b := notification.Broadcast{
		Title:   req.Title,
		Payload: req.Payload,
	}
	if req.PartnerID != nil && *req.PartnerID != "" {
		id, err := uuid.Parse(*req.PartnerID)
		if err != nil {
			platformerrors.WriteValidationError(c, "invalid partner id")
			return
		}
		b.PartnerID = &id
	}
	if req.ExpiresAt != nil {
		exp := time.Unix(*req.ExpiresAt, 0).UTC()
		b.ExpiresAt = &exp
	}

	published, err := h.notificationService.Publish(c.Request.Context(), b)
	if err != nil {
		if errors.Is(err, notification.ErrEmptyTitle) {
			platformerrors.WriteValidationError(c, "notification title is required")
			return
		}
		h.logger.Error().Err(err).Msg("failed to publish broadcast")
		platformerrors.WriteError(c, err, h.logger)
		return
	}

	resp := BroadcastResponse{
		ID:        published.ID.String(),
		Title:     published.Title,
		CreatedAt: published.CreatedAt.Unix(),
	}
	if published.PartnerID != nil {
		s := published.PartnerID.String()
		resp.PartnerID = &s
	}
	c.JSON(http.StatusCreated, resp)
}

// Overview handles GET /v1/admin/ops/overview
func (h *OpsHandler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	partners, err := h.partnerService.Count(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to count partners")
		platformerrors.WriteError(c, err, h.logger)
		return
	}

	byStatus, err := h.deliverableService.CountByStatus(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to count deliverables")
		platformerrors.WriteError(c, err, h.logger)
		return
	}

	active, err := h.notificationService.CountActive(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to count notifications")
		platformerrors.WriteError(c, err, h.logger)
		return
	}

	deliverables := make(map[string]int64, len(byStatus))
	for status, count := range byStatus {
		deliverables[string(status)] = count
	}

	c.JSON(http.StatusOK, OverviewResponse{
		Partners:            partners,
		DeliverablesByState: deliverables,
		ActiveNotifications: active,
	})
}
