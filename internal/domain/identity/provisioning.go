package identity

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// ErrInvalidAssignment indicates a provisioning input that violates the
// role/partner shape: a partner-role record needs a partner, an unknown role
// string cannot be stored.
var ErrInvalidAssignment = errors.New("invalid role assignment")

// Provisioner writes identity records on behalf of administrators. It is the
// only writer of the store; after each write it pushes the new assignment into
// the principal's claims and revokes their sessions so no live token keeps the
// previous role.
type Provisioner struct {
	repo   Repository
	side   SideChannel
	logger zerolog.Logger
}

// NewProvisioner constructs a Provisioner with required dependencies.
func NewProvisioner(repo Repository, side SideChannel, logger zerolog.Logger) *Provisioner {
	return &Provisioner{repo: repo, side: side, logger: logger}
}

// List returns all identity records.
func (p *Provisioner) List(ctx context.Context) ([]*IdentityRecord, error) {
	return p.repo.List(ctx)
}

// Get returns a single identity record.
func (p *Provisioner) Get(ctx context.Context, id uint) (*IdentityRecord, error) {
	return p.repo.FindByID(ctx, id)
}

// Provision upserts the (role, partner) assignment for a subject, then
// rewrites the subject's application claims and revokes their sessions. The
// store write is authoritative; claim rewrite and revocation failures are
// logged and left for the next resolution's reconciliation to retry.
func (p *Provisioner) Provision(ctx context.Context, record *IdentityRecord) (*IdentityRecord, error) {
	if !record.Role.IsValid() {
		return nil, ErrInvalidAssignment
	}
	if record.Role == RolePartner && record.PartnerID == nil {
		return nil, ErrInvalidAssignment
	}

	saved, err := p.repo.Upsert(ctx, record)
	if err != nil {
		return nil, err
	}

	if err := p.side.UpdateApplicationClaims(ctx, saved.Subject, saved.Role, saved.PartnerID); err != nil {
		p.logger.Warn().Err(err).Str("subject", saved.Subject).Msg("claims rewrite after provisioning failed")
		return saved, nil
	}
	if err := p.side.RevokeSessions(ctx, saved.Subject); err != nil {
		p.logger.Warn().Err(err).Str("subject", saved.Subject).Msg("session revocation after provisioning failed")
	}

	return saved, nil
}
