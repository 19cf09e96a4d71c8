package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// SuperIdentity is the hardcoded recovery override. A principal matching the
// configured subject, or the configured email case-insensitively, resolves to
// superadmin regardless of claims or the identity store. It exists so a
// misconfigured store can never lock out the operator.
type SuperIdentity struct {
	Subject string
	Email   string
}

func (s SuperIdentity) matches(p Principal) bool {
	if s.Subject != "" && s.Subject == p.Subject {
		return true
	}
	if s.Email != "" && strings.EqualFold(s.Email, p.Email) {
		return true
	}
	return false
}

// source is one step of the resolution chain. A step either yields a
// ResolvedIdentity, yields nothing (fall through), or fails the resolution.
type source interface {
	name() Source
	resolve(ctx context.Context, p Principal, claims SessionClaims) (*ResolvedIdentity, error)
}

// Resolver produces a single (role, partner) pair for a principal by
// evaluating an ordered list of sources, first match wins. It is a pure
// computation over its inputs; callers cache results per session token.
type Resolver struct {
	sources []source
}

// NewResolver builds the precedence chain: super identity, application
// claims, user claims, identity store, least-privilege default.
func NewResolver(super SuperIdentity, repo Repository) *Resolver {
	return &Resolver{
		sources: []source{
			superIdentitySource{super: super},
			claimsSource{pick: func(sc SessionClaims) ClaimSet { return sc.Application }, src: SourceApplicationClaims},
			claimsSource{pick: func(sc SessionClaims) ClaimSet { return sc.User }, src: SourceUserClaims},
			storeSource{repo: repo},
			defaultSource{},
		},
	}
}

// Resolve walks the source chain. It fails only on transient store
// unavailability; every other irregularity (unknown role strings, missing
// claims, absent record) falls through to the next source.
func (r *Resolver) Resolve(ctx context.Context, p Principal, claims SessionClaims) (ResolvedIdentity, error) {
	for _, s := range r.sources {
		resolved, err := s.resolve(ctx, p, claims)
		if err != nil {
			return ResolvedIdentity{}, fmt.Errorf("resolve via %s: %w", s.name(), err)
		}
		if resolved != nil {
			return *resolved, nil
		}
	}
	// Unreachable: defaultSource always yields.
	return ResolvedIdentity{Role: RolePartner, Source: SourceDefault}, nil
}

type superIdentitySource struct {
	super SuperIdentity
}

func (s superIdentitySource) name() Source { return SourceSuperIdentity }

func (s superIdentitySource) resolve(_ context.Context, p Principal, _ SessionClaims) (*ResolvedIdentity, error) {
	if !s.super.matches(p) {
		return nil, nil
	}
	return &ResolvedIdentity{Role: RoleSuperAdmin, PartnerID: nil, Source: SourceSuperIdentity}, nil
}

type claimsSource struct {
	pick func(SessionClaims) ClaimSet
	src  Source
}

func (s claimsSource) name() Source { return s.src }

func (s claimsSource) resolve(_ context.Context, _ Principal, claims SessionClaims) (*ResolvedIdentity, error) {
	cs := s.pick(claims)
	role, ok := cs.ResolvedRole()
	if !ok {
		return nil, nil
	}
	return &ResolvedIdentity{Role: role, PartnerID: cs.ResolvedPartnerID(), Source: s.src}, nil
}

type storeSource struct {
	repo Repository
}

func (s storeSource) name() Source { return SourceStore }

func (s storeSource) resolve(ctx context.Context, p Principal, _ SessionClaims) (*ResolvedIdentity, error) {
	record, err := s.repo.FindBySubject(ctx, p.Subject)
	if err != nil {
		if errors.Is(err, ErrStoreUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if record == nil {
		return nil, nil
	}
	return &ResolvedIdentity{Role: record.Role, PartnerID: record.PartnerID, Source: SourceStore}, nil
}

type defaultSource struct{}

func (defaultSource) name() Source { return SourceDefault }

func (defaultSource) resolve(context.Context, Principal, SessionClaims) (*ResolvedIdentity, error) {
	// Least privilege. This default must never grant admin access.
	return &ResolvedIdentity{Role: RolePartner, PartnerID: nil, Source: SourceDefault}, nil
}
