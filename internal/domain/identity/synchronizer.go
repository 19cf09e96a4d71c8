package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SideChannel is the privileged write path to the session token claims.
// Ordinary sessions cannot rewrite their own claims; implementations run with
// elevated service-account credentials against the identity provider.
type SideChannel interface {
	// UpdateApplicationClaims rewrites the application claim namespace for
	// the given subject to the supplied role and partner assignment.
	UpdateApplicationClaims(ctx context.Context, subject string, role Role, partnerID *uuid.UUID) error
	// RevokeSessions invalidates the subject's sessions so the next token
	// issued carries the rewritten claims.
	RevokeSessions(ctx context.Context, subject string) error
}

// Synchronizer pushes the authoritative store record into the session token's
// application claims when they drift. The store is authoritative; claims are
// a cache of it. Safe to invoke redundantly: matching claims are a no-op, and
// duplicate writes carry the same single-writer source value.
type Synchronizer struct {
	side   SideChannel
	logger zerolog.Logger
}

// NewSynchronizer constructs a Synchronizer.
func NewSynchronizer(side SideChannel, logger zerolog.Logger) *Synchronizer {
	return &Synchronizer{side: side, logger: logger}
}

// Reconcile compares the store record against the application claims and, on
// drift, rewrites the claims and revokes the subject's sessions. It reports
// whether a write happened. Side-channel failures are logged and swallowed:
// the current request proceeds on the resolved value, and the drift is
// retried on a later resolution. Resolution never fails closed here.
func (s *Synchronizer) Reconcile(ctx context.Context, subject string, record *IdentityRecord, claims SessionClaims) bool {
	if record == nil || claims.MatchesRecord(record) {
		return false
	}

	if err := s.side.UpdateApplicationClaims(ctx, subject, record.Role, record.PartnerID); err != nil {
		s.logger.Warn().
			Err(err).
			Str("subject", subject).
			Str("role", record.Role.String()).
			Msg("claims sync side channel failed, proceeding with store-resolved identity")
		return false
	}

	if err := s.side.RevokeSessions(ctx, subject); err != nil {
		// Claims were rewritten; the stale token simply lives until expiry.
		s.logger.Warn().
			Err(err).
			Str("subject", subject).
			Msg("session revocation after claims sync failed")
	}

	s.logger.Info().
		Str("subject", subject).
		Str("role", record.Role.String()).
		Msg("application claims reconciled with identity store")
	return true
}
