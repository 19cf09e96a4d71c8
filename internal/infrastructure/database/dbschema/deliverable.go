package dbschema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"portal-server/internal/domain/deliverable"
	"portal-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Deliverable{})
}

// Deliverable is a persisted unit of contracted work owned by one partner.
type Deliverable struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PartnerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title         string          `gorm:"type:varchar(255);not null"`
	Status        string          `gorm:"type:varchar(32);not null;default:'pending';index"`
	ContractValue decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	DueDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSchemaDeliverable converts a domain deliverable into a schema instance.
func NewSchemaDeliverable(d *deliverable.Deliverable) *Deliverable {
	if d == nil {
		return nil
	}

	return &Deliverable{
		ID:            d.ID,
		PartnerID:     d.PartnerID,
		Title:         d.Title,
		Status:        string(d.Status),
		ContractValue: d.ContractValue,
		DueDate:       d.DueDate,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// EtoD converts a schema deliverable back to the domain representation.
func (d *Deliverable) EtoD() *deliverable.Deliverable {
	if d == nil {
		return nil
	}

	return &deliverable.Deliverable{
		ID:            d.ID,
		PartnerID:     d.PartnerID,
		Title:         d.Title,
		Status:        deliverable.Status(d.Status),
		ContractValue: d.ContractValue,
		DueDate:       d.DueDate,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
