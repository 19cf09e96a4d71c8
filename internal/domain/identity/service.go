package identity

import (
	"context"

	"github.com/rs/zerolog"
)

// SessionResolution is the per-request output of the identity service.
type SessionResolution struct {
	Resolved ResolvedIdentity
	// RefreshRequired is set when the synchronizer rewrote the claims; the
	// caller should refresh its session so the next token reads correctly.
	RefreshRequired bool
	// FromCache marks resolutions served from the per-token cache.
	FromCache bool
}

// Service orchestrates resolution, caching, and claims reconciliation for a
// session. Resolution itself stays a pure computation; the service owns the
// cache and the reconcile side effect.
type Service struct {
	resolver     *Resolver
	synchronizer *Synchronizer
	cache        *ResolutionCache
	repo         Repository
	logger       zerolog.Logger
}

// NewService constructs a Service with required dependencies.
func NewService(resolver *Resolver, synchronizer *Synchronizer, cache *ResolutionCache, repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		resolver:     resolver,
		synchronizer: synchronizer,
		cache:        cache,
		repo:         repo,
		logger:       logger,
	}
}

// ResolveSession resolves the principal once per session token. Cache hits
// skip both resolution and reconciliation; a miss resolves, reconciles
// store-to-claims drift, and caches the result unless a rewrite just
// invalidated the token's claims. Concurrent requests under one session may
// race into Reconcile; that is safe because reconciliation is idempotent and
// the store is single-writer per principal.
func (s *Service) ResolveSession(ctx context.Context, p Principal, claims SessionClaims) (SessionResolution, error) {
	if cached, ok := s.cache.Get(p.TokenID); ok {
		return SessionResolution{Resolved: cached, FromCache: true}, nil
	}

	resolved, err := s.resolver.Resolve(ctx, p, claims)
	if err != nil {
		return SessionResolution{}, err
	}

	refresh := s.reconcile(ctx, p, claims)
	if refresh {
		// The rewritten claims make this token stale; leave it uncached so
		// nothing serves the pre-sync resolution.
		s.cache.Invalidate(p.TokenID)
	} else {
		s.cache.Put(p.TokenID, resolved)
	}

	return SessionResolution{Resolved: resolved, RefreshRequired: refresh}, nil
}

// InvalidateSession drops a token's cached resolution. Administrative role
// changes call this alongside session revocation.
func (s *Service) InvalidateSession(tokenID string) {
	s.cache.Invalidate(tokenID)
}

func (s *Service) reconcile(ctx context.Context, p Principal, claims SessionClaims) bool {
	record, err := s.repo.FindBySubject(ctx, p.Subject)
	if err != nil {
		// Reconciliation is best-effort; the resolved value already carries
		// the current request.
		s.logger.Warn().Err(err).Str("subject", p.Subject).Msg("skipping claims reconciliation, store lookup failed")
		return false
	}
	return s.synchronizer.Reconcile(ctx, p.Subject, record, claims)
}
