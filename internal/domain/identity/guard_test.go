package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize_RoleOutsideAllowedSetDenied(t *testing.T) {
	ec := EffectiveContext{Role: RolePartner}

	for _, capability := range []Capability{CapabilityManageUsers, CapabilityViewPartners, CapabilityFleetOperations} {
		decision := Authorize(ec, capability)
		assert.False(t, decision.Allow, "capability %s", capability)
		assert.Equal(t, DenyRoleNotAllowed, decision.Reason)
	}
}

func TestAuthorize_AdminCapabilities(t *testing.T) {
	ec := EffectiveContext{Role: RoleAdmin}

	assert.True(t, Authorize(ec, CapabilityManageUsers).Allow)
	assert.True(t, Authorize(ec, CapabilityViewPartners).Allow)
	// Fleet operations stay superadmin-only.
	assert.False(t, Authorize(ec, CapabilityFleetOperations).Allow)
}

func TestAuthorize_FleetOpsHiddenWhileViewingAs(t *testing.T) {
	pid := uuid.MustParse(partnerA)
	ec := EffectiveContext{Role: RoleSuperAdmin, EffectivePartnerID: &pid, ViewingAs: true}

	decision := Authorize(ec, CapabilityFleetOperations)
	assert.False(t, decision.Allow)
	assert.Equal(t, DenyHiddenWhileViewing, decision.Reason)

	// Dropping the directive restores the console.
	assert.True(t, Authorize(EffectiveContext{Role: RoleSuperAdmin}, CapabilityFleetOperations).Allow)
}

func TestAuthorize_UnknownCapabilityDenied(t *testing.T) {
	decision := Authorize(EffectiveContext{Role: RoleSuperAdmin}, Capability("launch_rockets"))
	assert.False(t, decision.Allow)
	assert.Equal(t, DenyUnknownCapability, decision.Reason)
}

func TestAuthorizePartnerResource_MismatchDeniedForEveryRole(t *testing.T) {
	owner := uuid.MustParse(partnerA)
	other := uuid.MustParse(partnerB)

	for _, role := range []Role{RolePartner, RoleAdmin, RoleSuperAdmin} {
		ec := EffectiveContext{Role: role, EffectivePartnerID: &other}
		decision := AuthorizePartnerResource(ec, owner)
		assert.False(t, decision.Allow, "role %s", role)
		assert.Equal(t, DenyScopeMismatch, decision.Reason)

		// No effective scope at all is also a mismatch.
		decision = AuthorizePartnerResource(EffectiveContext{Role: role}, owner)
		assert.False(t, decision.Allow, "role %s without scope", role)
	}
}

func TestAuthorizePartnerResource_MatchAllowed(t *testing.T) {
	owner := uuid.MustParse(partnerA)
	ec := EffectiveContext{Role: RoleAdmin, EffectivePartnerID: &owner, ViewingAs: true}
	assert.True(t, AuthorizePartnerResource(ec, owner).Allow)
}

func TestGuard_StateMachine(t *testing.T) {
	guard := NewGuard()
	assert.Equal(t, GuardUnresolved, guard.State())

	guard.BeginResolution()
	assert.Equal(t, GuardResolving, guard.State())

	decision := guard.Authorize(EffectiveContext{Role: RoleAdmin}, CapabilityManageUsers)
	assert.True(t, decision.Allow)
	assert.Equal(t, GuardAuthorized, guard.State())
}

func TestGuard_DeniedIsTerminal(t *testing.T) {
	guard := NewGuard()
	guard.BeginResolution()

	decision := guard.Authorize(EffectiveContext{Role: RolePartner}, CapabilityManageUsers)
	assert.False(t, decision.Allow)
	assert.Equal(t, GuardDenied, guard.State())

	// A later check on the same request cannot resurrect it.
	decision = guard.Authorize(EffectiveContext{Role: RoleSuperAdmin}, CapabilityViewDashboard)
	assert.False(t, decision.Allow)
	assert.Equal(t, GuardDenied, guard.State())
}

func TestNavigationSurface(t *testing.T) {
	partnerSurface := NavigationSurface(EffectiveContext{Role: RolePartner})
	assert.NotContains(t, partnerSurface, SectionUserAdmin)
	assert.NotContains(t, partnerSurface, SectionFleetOps)

	adminSurface := NavigationSurface(EffectiveContext{Role: RoleAdmin})
	assert.Contains(t, adminSurface, SectionUserAdmin)
	assert.NotContains(t, adminSurface, SectionFleetOps)

	superSurface := NavigationSurface(EffectiveContext{Role: RoleSuperAdmin})
	assert.Contains(t, superSurface, SectionFleetOps)

	pid := uuid.MustParse(partnerA)
	viewingAs := NavigationSurface(EffectiveContext{Role: RoleSuperAdmin, EffectivePartnerID: &pid, ViewingAs: true})
	assert.NotContains(t, viewingAs, SectionFleetOps, "fleet console hidden while viewing-as")
	assert.NotContains(t, viewingAs, SectionUserAdmin)
	assert.Contains(t, viewingAs, SectionDeliverables)
}
