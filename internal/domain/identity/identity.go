package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Principal captures the authenticated caller independent of role. It is
// produced by the session token validator; this package never authenticates.
type Principal struct {
	Subject  string
	Email    string
	Username string
	// TokenID is the session token identifier (jti); resolution results are
	// cached per token.
	TokenID string
}

// IdentityRecord is the authoritative (role, partner) assignment for a
// principal. Exactly one record exists per subject; it is written only by
// administrative provisioning.
type IdentityRecord struct {
	ID        uint
	Subject   string
	Email     *string
	Role      Role
	PartnerID *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository defines storage operations for identity records.
type Repository interface {
	FindBySubject(ctx context.Context, subject string) (*IdentityRecord, error)
	FindByID(ctx context.Context, id uint) (*IdentityRecord, error)
	List(ctx context.Context) ([]*IdentityRecord, error)
	Upsert(ctx context.Context, record *IdentityRecord) (*IdentityRecord, error)
}

// ResolvedIdentity is the resolver output: a single (role, partner) pair plus
// the source that produced it. PartnerID is non-nil only for partner-role
// principals or admins scoped to a partner subset.
type ResolvedIdentity struct {
	Role      Role
	PartnerID *uuid.UUID
	Source    Source
}

// Source names the resolution step that won.
type Source string

const (
	SourceSuperIdentity     Source = "super_identity"
	SourceApplicationClaims Source = "application_claims"
	SourceUserClaims        Source = "user_claims"
	SourceStore             Source = "store"
	SourceDefault           Source = "default"
)

// ErrStoreUnavailable marks a transient identity store failure. Resolution
// propagates it instead of defaulting to a role.
var ErrStoreUnavailable = errors.New("identity store unavailable")

func samePartner(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
