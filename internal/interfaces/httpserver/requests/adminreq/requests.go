package adminreq

// CreateUserRequest represents the request to provision a user's role
// assignment.
type CreateUserRequest struct {
	Subject   string  `json:"subject" validate:"required"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Role      string  `json:"role" validate:"required,oneof=partner admin superadmin"`
	PartnerID *string `json:"partner_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateUserRequest represents the request to change an existing assignment.
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=partner admin superadmin"`
	PartnerID *string `json:"partner_id,omitempty" validate:"omitempty,uuid"`
}
