// Package contexthandler serves the caller's effective context, the contract
// every portal frontend keys its rendering on.
package contexthandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/identity"
	"portal-server/internal/interfaces/httpserver/middlewares"
	"portal-server/internal/utils/platformerrors"
)

// ContextHandler handles /v1/me/context requests.
type ContextHandler struct {
	logger zerolog.Logger
}

// NewContextHandler constructs a new handler instance.
func NewContextHandler(logger zerolog.Logger) *ContextHandler {
	return &ContextHandler{logger: logger}
}

// MeContextResponse is the effective context plus the visible navigation.
type MeContextResponse struct {
	Role               string   `json:"role"`
	PartnerID          *string  `json:"partner_id"`
	EffectivePartnerID *string  `json:"effective_partner_id"`
	ViewingAs          bool     `json:"viewing_as"`
	Navigation         []string `json:"navigation"`
}

// GetContext handles GET /v1/me/context
func (h *ContextHandler) GetContext(c *gin.Context) {
	ec, ok := middlewares.EffectiveContextFromContext(c)
	if !ok {
		platformerrors.WriteAccessDenied(c)
		return
	}

	sections := identity.NavigationSurface(ec)
	navigation := make([]string, 0, len(sections))
	for _, section := range sections {
		navigation = append(navigation, string(section))
	}

	c.JSON(http.StatusOK, MeContextResponse{
		Role:               string(ec.Role),
		PartnerID:          uuidPtrToString(ec.PartnerID),
		EffectivePartnerID: uuidPtrToString(ec.EffectivePartnerID),
		ViewingAs:          ec.ViewingAs,
		Navigation:         navigation,
	})
}

func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
