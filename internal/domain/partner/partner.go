// Package partner provides partner organization domain models and behaviors.
package partner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status describes the lifecycle state of a partner organization.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// Partner models a tenant organization managed through the portal.
type Partner struct {
	ID        uuid.UUID
	Name      string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository defines storage operations for partners.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	List(ctx context.Context) ([]Partner, error)
	Count(ctx context.Context) (int64, error)
}

// ErrNotFound indicates the requested partner does not exist.
var ErrNotFound = errors.New("partner not found")

// Service exposes partner directory operations.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns a partner by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Partner, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// List returns all partner organizations.
func (s *Service) List(ctx context.Context) ([]Partner, error) {
	return s.repo.List(ctx)
}

// Count reports the number of partner organizations.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
