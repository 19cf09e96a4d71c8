package dbschema

import (
	"time"

	"github.com/google/uuid"

	"portal-server/internal/domain/partner"
	"portal-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Partner{})
}

// Partner is the persisted tenant organization.
type Partner struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(32);not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSchemaPartner converts a domain partner into a schema instance.
func NewSchemaPartner(p *partner.Partner) *Partner {
	if p == nil {
		return nil
	}

	return &Partner{
		ID:        p.ID,
		Name:      p.Name,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// EtoD converts a schema partner back to the domain representation.
func (p *Partner) EtoD() *partner.Partner {
	if p == nil {
		return nil
	}

	return &partner.Partner{
		ID:        p.ID,
		Name:      p.Name,
		Status:    partner.Status(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
