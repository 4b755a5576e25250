package rbac

import "maps"

// RolePermissions maps every known permission to whether it is granted.
type RolePermissions map[Permission]bool

// defaultMatrix is the built-in role/permission matrix. It is process-wide,
// read-only configuration: populated once at package init and never mutated
// at runtime, which keeps every evaluator function deterministic and safe for
// concurrent use without locking.
//
// Each entry lists the permissions granted to the role; everything absent is
// denied.
var defaultMatrix = map[Role]map[Permission]bool{
	RoleSuperadmin: grants(Permissions()...),
	RoleOrgAdmin: grants(
		PermManageUsers,
		PermManageAssets,
		PermManageLocations,
		PermManageWorkOrders,
		PermAssignWorkOrders,
		PermCompleteWorkOrders,
		PermManageMaintenance,
		PermViewReports,
		PermExportReports,
		PermViewDashboards,
		PermManageSettings,
	),
	RoleManager: grants(
		PermManageAssets,
		PermManageLocations,
		PermManageWorkOrders,
		PermAssignWorkOrders,
		PermCompleteWorkOrders,
		PermManageMaintenance,
		PermViewReports,
		PermExportReports,
		PermViewDashboards,
	),
	RoleStaffEmployee: grants(
		PermCompleteWorkOrders,
		PermViewDashboards,
	),
	RoleViewer: grants(
		PermViewReports,
		PermViewDashboards,
	),
}

func grants(perms ...Permission) map[Permission]bool {
	m := make(map[Permission]bool, len(perms))
	for _, p := range perms {
		m[p] = true
	}
	return m
}

// HasPermission reports whether the role is granted the permission.
// Unknown roles fail closed: the result is always false and the check never
// panics, whatever garbage the caller passes in.
func HasPermission(role Role, permission Permission) bool {
	granted, ok := defaultMatrix[role]
	if !ok {
		return false
	}
	return granted[permission]
}

// HasAnyPermission reports whether the role is granted at least one of the
// given permissions. An empty list yields false.
func HasAnyPermission(role Role, permissions ...Permission) bool {
	for _, p := range permissions {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether the role is granted every one of the
// given permissions. An empty list is vacuously true for every role; callers
// that mean "requires at least one permission" must check the list length
// themselves before calling.
func HasAllPermissions(role Role, permissions ...Permission) bool {
	for _, p := range permissions {
		if !HasPermission(role, p) {
			return false
		}
	}
	return true
}

// RolePermissionsFor returns the full permission mapping for a role, with an
// explicit granted/denied entry for every known permission. Intended for
// introspection and UI rendering. Unrecognized roles return a non-nil empty
// mapping rather than failing.
func RolePermissionsFor(role Role) RolePermissions {
	granted, ok := defaultMatrix[role]
	if !ok {
		return RolePermissions{}
	}

	out := make(RolePermissions, len(Permissions()))
	for _, p := range Permissions() {
		out[p] = granted[p]
	}
	return out
}

// clone is used by evaluators to take defensive copies of grant sets.
func clone(m map[Permission]bool) map[Permission]bool {
	out := make(map[Permission]bool, len(m))
	maps.Copy(out, m)
	return out
}
