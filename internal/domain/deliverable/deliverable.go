// Package deliverable provides deliverable domain models and behaviors.
package deliverable

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status describes where a deliverable sits in its workflow.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDelivered  Status = "delivered"
	StatusAccepted   Status = "accepted"
)

// Deliverable models a unit of contracted work owned by a single partner.
type Deliverable struct {
	ID            uuid.UUID
	PartnerID     uuid.UUID
	Title         string
	Status        Status
	ContractValue decimal.Decimal
	DueDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Repository defines storage operations for deliverables.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Deliverable, error)
	ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]Deliverable, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}

// ErrNotFound indicates the requested deliverable does not exist.
var ErrNotFound = errors.New("deliverable not found")

// Service exposes deliverable read operations. Listing is always scoped to a
// single partner; callers pass the effective partner, never the resolved one,
// so an impersonating administrator sees exactly the tenant's view.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns a deliverable by ID. Ownership checks belong to the caller.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Deliverable, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

// ListForPartner returns the deliverables owned by the given partner.
func (s *Service) ListForPartner(ctx context.Context, partnerID uuid.UUID) ([]Deliverable, error) {
	return s.repo.ListByPartner(ctx, partnerID)
}

// CountByStatus aggregates fleet-wide deliverable counts per status.
func (s *Service) CountByStatus(ctx context.Context) (map[Status]int64, error) {
	return s.repo.CountByStatus(ctx)
}
