package identity

import (
	"strings"

	"github.com/google/uuid"
)

// ClaimSet is one namespace of role assertions embedded in the session token.
// Raw strings are kept as issued; normalization happens at read time.
type ClaimSet struct {
	Role      string
	PartnerID string
}

// IsEmpty reports whether the namespace carries no role assertion.
func (cs ClaimSet) IsEmpty() bool {
	return strings.TrimSpace(cs.Role) == ""
}

// ResolvedRole normalizes the raw role string. Unknown role strings are
// treated as absent.
func (cs ClaimSet) ResolvedRole() (Role, bool) {
	return NormalizeRole(cs.Role)
}

// ResolvedPartnerID parses the partner id claim; malformed values read as nil.
func (cs ClaimSet) ResolvedPartnerID() *uuid.UUID {
	raw := strings.TrimSpace(cs.PartnerID)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// SessionClaims bundles the two claim namespaces carried by the session
// token. Application claims are written only through the privileged side
// channel; user claims are self-service profile data and rank below them.
type SessionClaims struct {
	Application ClaimSet
	User        ClaimSet
}

// MatchesRecord reports whether the application namespace already reflects
// the store record. Used by the synchronizer's drift check.
func (sc SessionClaims) MatchesRecord(record *IdentityRecord) bool {
	if record == nil {
		return true
	}
	role, ok := sc.Application.ResolvedRole()
	if !ok || role != record.Role {
		return false
	}
	return samePartner(sc.Application.ResolvedPartnerID(), record.PartnerID)
}
