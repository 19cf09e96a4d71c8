package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestApplyImpersonation_PartnerDirectiveIgnored(t *testing.T) {
	own := uuid.MustParse(partnerA)
	resolved := ResolvedIdentity{Role: RolePartner, PartnerID: &own}
	directive := &Directive{RequestedPartnerID: uuid.MustParse(partnerB)}

	ec := ApplyImpersonation(resolved, directive)
	if ec.ViewingAs {
		t.Fatalf("partner must never enter viewing-as mode")
	}
	if ec.EffectivePartnerID == nil || *ec.EffectivePartnerID != own {
		t.Fatalf("expected effective partner %s, got %v", own, ec.EffectivePartnerID)
	}
}

func TestApplyImpersonation_AdminDirectiveApplies(t *testing.T) {
	requested := uuid.MustParse(partnerB)
	resolved := ResolvedIdentity{Role: RoleAdmin}

	ec := ApplyImpersonation(resolved, &Directive{RequestedPartnerID: requested})
	if !ec.ViewingAs {
		t.Fatalf("expected viewing-as mode")
	}
	if ec.EffectivePartnerID == nil || *ec.EffectivePartnerID != requested {
		t.Fatalf("expected effective partner %s, got %v", requested, ec.EffectivePartnerID)
	}
	if ec.Role != RoleAdmin {
		t.Fatalf("impersonation must not change the resolved role")
	}
	if ec.PartnerID != nil {
		t.Fatalf("caller's own partner assignment must stay untouched")
	}
}

func TestApplyImpersonation_SuperadminDirectiveApplies(t *testing.T) {
	requested := uuid.MustParse(partnerA)
	ec := ApplyImpersonation(ResolvedIdentity{Role: RoleSuperAdmin}, &Directive{RequestedPartnerID: requested})
	if !ec.ViewingAs || ec.Role != RoleSuperAdmin {
		t.Fatalf("unexpected context %+v", ec)
	}
}

func TestApplyImpersonation_NoDirectiveNoResidue(t *testing.T) {
	own := uuid.MustParse(partnerA)
	resolved := ResolvedIdentity{Role: RoleAdmin, PartnerID: &own}

	// A previous request may have carried a directive; this one does not.
	_ = ApplyImpersonation(resolved, &Directive{RequestedPartnerID: uuid.MustParse(partnerB)})
	ec := ApplyImpersonation(resolved, nil)

	if ec.ViewingAs {
		t.Fatalf("viewing-as must not persist across requests")
	}
	if ec.EffectivePartnerID == nil || *ec.EffectivePartnerID != own {
		t.Fatalf("expected own partner scope restored, got %v", ec.EffectivePartnerID)
	}
}

func TestParseDirective(t *testing.T) {
	if d := ParseDirective(""); d != nil {
		t.Fatalf("empty parameter must parse as no directive")
	}
	if d := ParseDirective("not-a-uuid"); d != nil {
		t.Fatalf("malformed parameter must parse as no directive")
	}
	want := uuid.MustParse(partnerA)
	d := ParseDirective("  " + partnerA + " ")
	if d == nil || d.RequestedPartnerID != want {
		t.Fatalf("expected directive for %s, got %+v", want, d)
	}
}
