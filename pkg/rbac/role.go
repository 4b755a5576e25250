package rbac

import "strings"

// Role is a coarse-grained identity classification determining baseline access.
// The set of roles is closed; anything the backend sends that is not recognized
// collapses to RoleViewer so that access always fails closed.
type Role string

const (
	// RoleSuperadmin is the platform-wide administrator.
	RoleSuperadmin Role = "superadmin"

	// RoleOrgAdmin administers a single organization.
	RoleOrgAdmin Role = "orgadmin"

	// RoleManager plans and assigns maintenance work within an organization.
	RoleManager Role = "manager"

	// RoleStaffEmployee executes assigned work orders.
	RoleStaffEmployee Role = "staff_employee"

	// RoleViewer has read-only access and is the fail-closed default.
	RoleViewer Role = "viewer"
)

// legacyAliases maps role names still emitted by older backend versions to
// their current equivalents.
var legacyAliases = map[string]Role{
	"platform_owner": RoleSuperadmin,
	"owner":          RoleOrgAdmin,
	"technician":     RoleStaffEmployee,
}

// Roles returns all known roles ordered from most to least privileged.
func Roles() []Role {
	return []Role{RoleSuperadmin, RoleOrgAdmin, RoleManager, RoleStaffEmployee, RoleViewer}
}

// ToRole normalizes a raw role string to a known Role. Legacy aliases are
// rewritten to their current names; unrecognized input collapses to
// RoleViewer. The function is total and idempotent: it never fails, and
// ToRole(string(ToRole(x))) == ToRole(x) for any input.
func ToRole(raw string) Role {
	name := strings.ToLower(strings.TrimSpace(raw))

	if alias, ok := legacyAliases[name]; ok {
		return alias
	}

	role := Role(name)
	if _, ok := defaultMatrix[role]; ok {
		return role
	}

	return RoleViewer
}

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	_, ok := defaultMatrix[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}
