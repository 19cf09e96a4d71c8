package partnerhandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/partner"
	"portal-server/internal/utils/platformerrors"
)

// PartnerHandler handles partner directory HTTP requests.
type PartnerHandler struct {
	service *partner.Service
	logger  zerolog.Logger
}

// NewPartnerHandler constructs a new handler instance.
func NewPartnerHandler(service *partner.Service, logger zerolog.Logger) *PartnerHandler {
	return &PartnerHandler{service: service, logger: logger}
}

// PartnerResponse represents a single partner organization.
type PartnerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// PartnerListResponse represents the partner directory.
type PartnerListResponse struct {
	Data  []PartnerResponse `json:"data"`
	Total int               `json:"total"`
}

func toPartnerResponse(p *partner.Partner) PartnerResponse {
	return PartnerResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt.Unix(),
		UpdatedAt: p.UpdatedAt.Unix(),
	}
}

// List handles GET /v1/partners
func (h *PartnerHandler) List(c *gin.Context) {
	partners, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list partners")
		platformerrors.WriteError(c, err, h.logger)
		return
	}

	data := make([]PartnerResponse, 0, len(partners))
	for i := range partners {
		data = append(data, toPartnerResponse(&partners[i]))
	}
	c.JSON(http.StatusOK, PartnerListResponse{Data: data, Total: len(data)})
}

// Get handles GET /v1/partners/:id
func (h *PartnerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		platformerrors.WriteValidationError(c, "invalid partner id")
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, partner.ErrNotFound) {
			platformerrors.WriteNotFound(c, "partner not found")
			return
		}
		h.logger.Error().Err(err).Str("partner_id", id.String()).Msg("failed to get partner")
		platformerrors.WriteError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, toPartnerResponse(p))
}
