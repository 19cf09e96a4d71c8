package dbschema

import (
	"github.com/google/uuid"

	"portal-server/internal/domain/identity"
	"portal-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(IdentityRecord{})
}

// IdentityRecord is the persisted (role, partner) assignment for a principal.
// One row per subject; written only by administrative provisioning.
type IdentityRecord struct {
	BaseModel
	Subject   string     `gorm:"type:varchar(255);not null;uniqueIndex:ux_identity_records_subject"`
	Email     *string    `gorm:"type:varchar(320)"`
	Role      string     `gorm:"type:varchar(32);not null"`
	PartnerID *uuid.UUID `gorm:"type:uuid;index"`
}

// NewSchemaIdentityRecord converts a domain record into a schema instance.
func NewSchemaIdentityRecord(r *identity.IdentityRecord) *IdentityRecord {
	if r == nil {
		return nil
	}

	return &IdentityRecord{
		BaseModel: BaseModel{
			ID:        r.ID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
		Subject:   r.Subject,
		Email:     r.Email,
		Role:      string(r.Role),
		PartnerID: r.PartnerID,
	}
}

// EtoD converts a schema record back to the domain representation.
func (r *IdentityRecord) EtoD() *identity.IdentityRecord {
	if r == nil {
		return nil
	}

	role, ok := identity.NormalizeRole(r.Role)
	if !ok {
		// Rows predating a role rename keep resolving at least privilege.
		role = identity.RolePartner
	}

	return &identity.IdentityRecord{
		ID:        r.ID,
		Subject:   r.Subject,
		Email:     r.Email,
		Role:      role,
		PartnerID: r.PartnerID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
