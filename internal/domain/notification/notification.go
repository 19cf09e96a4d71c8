// Package notification provides notification domain models and behaviors.
package notification

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portal-server/internal/domain/identity"
)

// Notification models a message on a tenant's feed. A nil PartnerID marks a
// fleet-wide broadcast.
type Notification struct {
	ID        uuid.UUID
	PartnerID *uuid.UUID
	Title     string
	Payload   json.RawMessage
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// Broadcast is the input for publishing a notification. A nil PartnerID
// targets the whole fleet.
type Broadcast struct {
	PartnerID *uuid.UUID
	Title     string
	Payload   json.RawMessage
	ExpiresAt *time.Time
}

// Repository defines storage operations for notifications.
type Repository interface {
	ListFeed(ctx context.Context, partnerID *uuid.UUID, includeFleetWide bool) ([]Notification, error)
	Create(ctx context.Context, n *Notification) (*Notification, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

// ErrEmptyTitle indicates a broadcast without a title.
var ErrEmptyTitle = errors.New("notification title is required")

// Service exposes the notification feed and broadcast operations.
type Service struct {
	repo   Repository
	logger zerolog.Logger
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Feed returns the notifications visible to the given context. Fleet-wide
// rows are internal broadcasts: they surface for administrators working under
// their own identity, never inside the tenant view an impersonating
// administrator is rendering.
func (s *Service) Feed(ctx context.Context, ec identity.EffectiveContext) ([]Notification, error) {
	includeFleetWide := ec.Role.CanImpersonate() && !ec.ViewingAs
	return s.repo.ListFeed(ctx, ec.EffectivePartnerID, includeFleetWide)
}

// Publish stores a broadcast on the feed.
func (s *Service) Publish(ctx context.Context, b Broadcast) (*Notification, error) {
	if b.Title == "" {
		return nil, ErrEmptyTitle
	}
	n := &Notification{
		PartnerID: b.PartnerID,
		Title:     b.Title,
		Payload:   b.Payload,
		ExpiresAt: b.ExpiresAt,
	}
	return s.repo.Create(ctx, n)
}

// PruneExpired removes notifications past their expiry and reports how many
// rows went away. Run from the background sweep.
func (s *Service) PruneExpired(ctx context.Context) (int64, error) {
	removed, err := s.repo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Warn().Err(err).Msg("notification sweep failed")
		return 0, err
	}
	if removed > 0 {
		s.logger.Info().Int64("removed", removed).Msg("pruned expired notifications")
	}
	return removed, nil
}

// CountActive reports the number of unexpired notifications.
func (s *Service) CountActive(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}
