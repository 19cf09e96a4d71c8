package adminuserhandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/identity"
	"portal-server/internal/interfaces/httpserver/requests/adminreq"
	"portal-server/internal/utils/platformerrors"
)

// AdminUserHandler manages identity records on behalf of administrators.
type AdminUserHandler struct {
	provisioner *identity.Provisioner
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewAdminUserHandler constructs a new handler instance.
func NewAdminUserHandler(provisioner *identity.Provisioner, logger zerolog.Logger) *AdminUserHandler {
	return &AdminUserHandler{
		provisioner: provisioner,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger,
	}
}

// UserResponse represents an identity record.
type UserResponse struct {
	ID        uint    `json:"id"`
	Subject   string  `json:"subject"`
	Email     *string `json:"email,omitempty"`
	Role      string  `json:"role"`
	PartnerID *string `json:"partner_id,omitempty"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

// UserListResponse represents all identity records.
type UserListResponse struct {
	Data  []UserResponse `json:"data"`
	Total int            `json:"total"`
}

func toUserResponse(r *identity.IdentityRecord) UserResponse {
	resp := UserResponse{
		ID:        r.ID,
		Subject:   r.Subject,
		Email:     r.Email,
		Role:      string(r.Role),
		CreatedAt: r.CreatedAt.Unix(),
		UpdatedAt: r.UpdatedAt.Unix(),
	}
	if r.PartnerID != nil {
		s := r.PartnerID.String()
		resp.PartnerID = &s
	}
	return resp
}

func parsePartnerID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// List handles GET /v1/admin/users
func (h *AdminUserHandler) List(c *gin.Context) {
	records, err := h.provisioner.List(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list identity records")
		platformerrors.WriteError(c, err, h.logger)
		return
	}

	data := make([]UserResponse, 0, len(records))
	for _, r := range records {
		data = append(data, toUserResponse(r))
	}
	c.JSON(http.StatusOK, UserListResponse{Data: data, Total: len(data)})
}

// Get handles GET /v1/admin/users/:id
func (h *AdminUserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		platformerrors.WriteValidationError(c, "invalid user id")
		return
	}

	record, err := h.provisioner.Get(c.Request.Context(), uint(id))
	if err != nil {
		h.logger.Error().Err(err).Uint64("user_id", id).Msg("failed to get identity record")
		platformerrors.WriteError(c, err, h.logger)
		return
	}
	if record == nil {
		platformerrors.WriteNotFound(c, "user not found")
		return
	}

	c.JSON(http.StatusOK, toUserResponse(record))
}

// Create handles POST /v1/admin/users
func (h *AdminUserHandler) Create(c *gin.Context) {
	var req adminreq.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteValidationError(c, err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		platformerrors.WriteValidationError(c, err.Error())
		return
	}

	partnerID, err := parsePartnerID(req.PartnerID)
	if err != nil {
		platformerrors.WriteValidationError(c, "invalid partner id")
		return
	}

	record := &identity.IdentityRecord{
		Subject:   req.Subject,
		Email:     req.Email,
		Role:      identity.Role(req.Role),
		PartnerID: partnerID,
	}

	saved, err := h.provisioner.Provision(c.Request.Context(), record)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidAssignment) {
			platformerrors.WriteValidationError(c, "partner role requires a partner assignment")
			return
		}
		h.logger.Error().Err(err).Str("subject", req.Subject).Msg("failed to provision user")
		platformerrors.WriteError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(saved))
}

// Update handles PUT /v1/admin/users/:id
func (h *AdminUserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		platformerrors.WriteValidationError(c, "invalid user id")
		return
	}

	var req adminreq.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteValidationError(c, err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		platformerrors.WriteValidationError(c, err.Error())
		return
	}

	record, err := h.provisioner.Get(c.Request.Context(), uint(id))
	if err != nil {
		h.logger.Error().Err(err).Uint64("user_id", id).Msg("failed to load identity record")
		platformerrors.WriteError(c, err, h.logger)
		return
	}
	if record == nil {
		platformerrors.WriteNotFound(c, "user not found")
		return
	}

	if req.Email != nil {
		record.Email = req.Email
	}
	if req.Role != nil {
		record.Role = identity.Role(*req.Role)
	}
	if req.PartnerID != nil {
		partnerID, err := parsePartnerID(req.PartnerID)
		if err != nil {
			platformerrors.WriteValidationError(c, "invalid partner id")
			return
		}
		record.PartnerID = partnerID
	}

	saved, err := h.provisioner.Provision(c.Request.Context(), record)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidAssignment) {
			platformerrors.WriteValidationError(c, "partner role requires a partner assignment")
			return
		}
		h.logger.Error().Err(err).Str("subject", record.Subject).Msg("failed to update user")
		platformerrors.WriteError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(saved))
}
