package identity

import (
	"strings"

	"github.com/google/uuid"
)

// Directive is a transient "view as partner X" request parameter. It is never
// persisted server-side and is only honored for admin-capable roles.
type Directive struct {
	RequestedPartnerID uuid.UUID
}

// ParseDirective reads a raw query parameter into a Directive. Empty or
// malformed values read as no directive; a bad directive is never an error a
// caller can observe.
func ParseDirective(raw string) *Directive {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &Directive{RequestedPartnerID: id}
}

// EffectiveContext is what every downstream query and navigation decision
// keys on. EffectivePartnerID accounts for impersonation; PartnerID is the
// caller's own assignment and never changes under a directive.
type EffectiveContext struct {
	Role               Role
	PartnerID          *uuid.UUID
	EffectivePartnerID *uuid.UUID
	// ViewingAs is true while an admin-capable caller carries a directive.
	ViewingAs bool
}

// ApplyImpersonation layers a view-as directive over a resolved identity.
// Pure function of its inputs: removing the directive restores the caller's
// own scope with no residual state. Partners can never impersonate; their
// directives are ignored silently so the capability is not enumerable.
func ApplyImpersonation(resolved ResolvedIdentity, directive *Directive) EffectiveContext {
	ec := EffectiveContext{
		Role:               resolved.Role,
		PartnerID:          resolved.PartnerID,
		EffectivePartnerID: resolved.PartnerID,
	}
	if directive == nil || !resolved.Role.CanImpersonate() {
		return ec
	}
	requested := directive.RequestedPartnerID
	ec.EffectivePartnerID = &requested
	ec.ViewingAs = true
	return ec
}
