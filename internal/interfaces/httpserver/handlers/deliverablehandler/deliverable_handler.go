package deliverablehandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/deliverable"
	"portal-server/internal/domain/identity"
	"portal-server/internal/infrastructure/metrics"
	"portal-server/internal/interfaces/httpserver/middlewares"
	"portal-server/internal/utils/platformerrors"
)

// DeliverableHandler handles deliverable HTTP requests. Every read is scoped
// by the effective partner, so impersonating administrators see exactly what
// the tenant sees.
type DeliverableHandler struct {
	service *deliverable.Service
	logger  zerolog.Logger
}

// NewDeliverableHandler constructs a new handler instance.
func NewDeliverableHandler(service *deliverable.Service, logger zerolog.Logger) *DeliverableHandler {
	return &DeliverableHandler{service: service, logger: logger}
}

// DeliverableResponse represents a single deliverable.
type DeliverableResponse struct {
	ID            string  `json:"id"`
	PartnerID     string  `json:"partner_id"`
	Title         string  `json:"title"`
	Status        string  `json:"status"`
	ContractValue string  `json:"contract_value"`
	DueDate       *int64  `json:"due_date,omitempty"`
	CreatedAt     int64   `json:"created_at"`
	UpdatedAt     int64   `json:"updated_at"`
}

// DeliverableListResponse represents a partner's deliverables.
type DeliverableListResponse struct {
	Data  []DeliverableResponse `json:"data"`
	Total int                   `json:"total"`
}

func toDeliverableResponse(d *deliverable.Deliverable) DeliverableResponse {
	resp := DeliverableResponse{
		ID:            d.ID.String(),
		PartnerID:     d.PartnerID.String(),
		Title:         d.Title,
		Status:        string(d.Status),
		ContractValue: d.ContractValue.StringFixed(2),
		CreatedAt:     d.CreatedAt.Unix(),
		UpdatedAt:     d.UpdatedAt.Unix(),
	}
	if d.DueDate != nil {
		due := d.DueDate.Unix()
		resp.DueDate = &due
	}
	return resp
}

// List handles GET /v1/deliverables
func (h *DeliverableHandler) List(c *gin.Context) {
	ec, ok := middlewares.EffectiveContextFromContext(c)
	if !ok {
		platformerrors.WriteAccessDenied(c)
		return
	}

	// No effective partner means no tenant view to render.
	if ec.EffectivePartnerID == nil {
		c.JSON(http.StatusOK, DeliverableListResponse{Data: []DeliverableResponse{}})
		return
	}

	deliverables, err := h.service.ListForPartner(c.Request.Context(), *ec.EffectivePartnerID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list deliverables")
		platformerrors.WriteError(c, err, h.logger)
		return
	}

	data := make([]DeliverableResponse, 0, len(deliverables))
	for i := range deliverables {
		data = append(data, toDeliverableResponse(&deliverables[i]))
	}
	c.JSON(http.StatusOK, DeliverableListResponse{Data: data, Total: len(data)})
}

// Get handles GET /v1/deliverables/:id
func (h *DeliverableHandler) Get(c *gin.Context) {
	ec, ok := middlewares.EffectiveContextFromContext(c)
	if !ok {
		platformerrors.WriteAccessDenied(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		platformerrors.WriteValidationError(c, "invalid deliverable id")
		return
	}

	d, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, deliverable.ErrNotFound) {
			platformerrors.WriteNotFound(c, "deliverable not found")
			return
		}
		h.logger.Error().Err(err).Str("deliverable_id", id.String()).Msg("failed to get deliverable")
		platformerrors.WriteError(c, err, h.logger)
		return
	}

	// Ownership check: every role is denied on a scope mismatch.
	if decision := identity.AuthorizePartnerResource(ec, d.PartnerID); !decision.Allow {
		metrics.RecordDenial(string(identity.CapabilityViewDeliverables), string(decision.Reason))
		platformerrors.WriteAccessDenied(c)
		return
	}

	c.JSON(http.StatusOK, toDeliverableResponse(d))
}
