// Package identity implements role resolution, claims reconciliation,
// impersonation, and capability checks for the partner portal.
package identity

import "strings"

// Role is the canonical portal role.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RolePartner    Role = "partner"
)

// legacyRoleAliases maps role spellings from earlier portal generations onto
// the canonical three. Matching is case-insensitive.
var legacyRoleAliases = map[string]Role{
	"superadmin":    RoleSuperAdmin,
	"super_admin":   RoleSuperAdmin,
	"superuser":     RoleSuperAdmin,
	"root":          RoleSuperAdmin,
	"admin":         RoleAdmin,
	"administrator": RoleAdmin,
	"staff":         RoleAdmin,
	"partner":       RolePartner,
	"client":        RolePartner,
	"vendor":        RolePartner,
}

// NormalizeRole maps a raw role string onto the canonical enum. Unknown or
// empty strings report ok=false; callers treat that as "absent", never as an
// error, and fall through to the next resolution source.
func NormalizeRole(raw string) (Role, bool) {
	role, ok := legacyRoleAliases[strings.ToLower(strings.TrimSpace(raw))]
	return role, ok
}

// IsValid reports whether r is one of the canonical roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RolePartner:
		return true
	}
	return false
}

// CanImpersonate reports whether the role may carry a view-as directive.
func (r Role) CanImpersonate() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

func (r Role) String() string {
	return string(r)
}
