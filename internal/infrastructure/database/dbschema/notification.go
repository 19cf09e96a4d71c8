package dbschema

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"portal-server/internal/domain/notification"
	"portal-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Notification{})
}

// Notification is a persisted feed entry. A NULL partner_id marks a
// fleet-wide broadcast.
type Notification struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PartnerID *uuid.UUID     `gorm:"type:uuid;index"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb"`
	ExpiresAt *time.Time     `gorm:"index"`
	CreatedAt time.Time
}

// NewSchemaNotification converts a domain notification into a schema instance.
func NewSchemaNotification(n *notification.Notification) *Notification {
	if n == nil {
		return nil
	}

	return &Notification{
		ID:        n.ID,
		PartnerID: n.PartnerID,
		Title:     n.Title,
		Payload:   datatypes.JSON(n.Payload),
		ExpiresAt: n.ExpiresAt,
		CreatedAt: n.CreatedAt,
	}
}

// EtoD converts a schema notification back to the domain representation.
func (n *Notification) EtoD() *notification.Notification {
	if n == nil {
		return nil
	}

	return &notification.Notification{
		ID:        n.ID,
		PartnerID: n.PartnerID,
		Title:     n.Title,
		Payload:   json.RawMessage(n.Payload),
		ExpiresAt: n.ExpiresAt,
		CreatedAt: n.CreatedAt,
	}
}
