package opsreq

import "encoding/json"

// BroadcastRequest represents the request to publish a notification. A nil
// partner_id targets every tenant's feed.
type BroadcastRequest struct {
	PartnerID *string         `json:"partner_id,omitempty" validate:"omitempty,uuid"`
	Title     string          `json:"title" validate:"required"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	ExpiresAt *int64          `json:"expires_at,omitempty"`
}
