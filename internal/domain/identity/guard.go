package identity

import "github.com/google/uuid"

// Capability is a named permission checked by the access guard.
type Capability string

const (
	CapabilityViewDashboard     Capability = "view_dashboard"
	CapabilityViewDeliverables  Capability = "view_deliverables"
	CapabilityViewNotifications Capability = "view_notifications"
	CapabilityViewPartners      Capability = "view_partners"
	CapabilityManageUsers       Capability = "manage_users"
	CapabilityFleetOperations   Capability = "fleet_operations"
)

// capabilityRule names the roles allowed to exercise a capability and whether
// the capability is withheld while a view-as directive is active.
type capabilityRule struct {
	roles           map[Role]struct{}
	hiddenViewingAs bool
}

var capabilityRules = map[Capability]capabilityRule{
	CapabilityViewDashboard:     {roles: roleSet(RolePartner, RoleAdmin, RoleSuperAdmin)},
	CapabilityViewDeliverables:  {roles: roleSet(RolePartner, RoleAdmin, RoleSuperAdmin)},
	CapabilityViewNotifications: {roles: roleSet(RolePartner, RoleAdmin, RoleSuperAdmin)},
	CapabilityViewPartners:      {roles: roleSet(RoleAdmin, RoleSuperAdmin)},
	CapabilityManageUsers:       {roles: roleSet(RoleAdmin, RoleSuperAdmin)},
	// Fleet-wide operations stay superadmin-only and are additionally hidden
	// while viewing-as, so a single-tenant UI context can never issue them.
	CapabilityFleetOperations: {roles: roleSet(RoleSuperAdmin), hiddenViewingAs: true},
}

func roleSet(roles ...Role) map[Role]struct{} {
	set := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// GuardState tracks a protected request through resolution.
type GuardState string

const (
	GuardUnresolved GuardState = "unresolved"
	GuardResolving  GuardState = "resolving"
	GuardAuthorized GuardState = "authorized"
	GuardDenied     GuardState = "denied"
)

// DenyReason is recorded for logs and metrics only; responses stay generic.
type DenyReason string

const (
	DenyRoleNotAllowed     DenyReason = "role_not_allowed"
	DenyHiddenWhileViewing DenyReason = "hidden_while_viewing_as"
	DenyScopeMismatch      DenyReason = "scope_mismatch"
	DenyUnknownCapability  DenyReason = "unknown_capability"
)

// Decision is the guard verdict for one capability check.
type Decision struct {
	Allow  bool
	Reason DenyReason
}

// Guard enforces capability checks per request. Denied is terminal: once a
// request is denied no partial data is returned.
type Guard struct {
	state GuardState
}

// NewGuard returns a guard in the unresolved state.
func NewGuard() *Guard {
	return &Guard{state: GuardUnresolved}
}

// BeginResolution moves the guard out of the unresolved state when the
// request arrives, before an identity is available.
func (g *Guard) BeginResolution() {
	if g.state == GuardUnresolved {
		g.state = GuardResolving
	}
}

// State returns the current guard state.
func (g *Guard) State() GuardState {
	return g.state
}

// Authorize checks a capability against the effective context and settles the
// guard state. A role the principal does not hold is always denied outright.
func (g *Guard) Authorize(ec EffectiveContext, capability Capability) Decision {
	if g.state == GuardDenied {
		return Decision{Allow: false, Reason: DenyRoleNotAllowed}
	}
	decision := Authorize(ec, capability)
	if decision.Allow {
		g.state = GuardAuthorized
	} else {
		g.state = GuardDenied
	}
	return decision
}

// Authorize is the stateless capability check.
func Authorize(ec EffectiveContext, capability Capability) Decision {
	rule, ok := capabilityRules[capability]
	if !ok {
		return Decision{Allow: false, Reason: DenyUnknownCapability}
	}
	if _, ok := rule.roles[ec.Role]; !ok {
		return Decision{Allow: false, Reason: DenyRoleNotAllowed}
	}
	if rule.hiddenViewingAs && ec.ViewingAs {
		return Decision{Allow: false, Reason: DenyHiddenWhileViewing}
	}
	return Decision{Allow: true}
}

// AuthorizePartnerResource checks a partner-scoped resource fetch. The
// effective partner must match the owning partner; a mismatch is denied for
// every role. Admins reach a tenant's data by viewing-as that tenant.
func AuthorizePartnerResource(ec EffectiveContext, owner uuid.UUID) Decision {
	if ec.EffectivePartnerID == nil || *ec.EffectivePartnerID != owner {
		return Decision{Allow: false, Reason: DenyScopeMismatch}
	}
	return Decision{Allow: true}
}

// NavigationSection is one entry of the portal's navigation surface.
type NavigationSection string

const (
	SectionDashboard     NavigationSection = "dashboard"
	SectionDeliverables  NavigationSection = "deliverables"
	SectionNotifications NavigationSection = "notifications"
	SectionPartners      NavigationSection = "partners"
	SectionUserAdmin     NavigationSection = "user_admin"
	SectionFleetOps      NavigationSection = "fleet_ops"
)

// NavigationSurface selects the sections visible for an effective context.
// While viewing-as, admin-capable callers see the partner surface for the
// impersonated tenant; the fleet console disappears even though the
// underlying role is unchanged.
func NavigationSurface(ec EffectiveContext) []NavigationSection {
	if ec.Role == RolePartner || ec.ViewingAs {
		return []NavigationSection{SectionDashboard, SectionDeliverables, SectionNotifications}
	}
	sections := []NavigationSection{SectionDashboard, SectionDeliverables, SectionNotifications, SectionPartners, SectionUserAdmin}
	if ec.Role == RoleSuperAdmin {
		sections = append(sections, SectionFleetOps)
	}
	return sections
}
