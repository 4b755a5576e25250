// Package rbac provides the role/permission matrix and evaluator for CMMS
// admin front-ends.
//
// Roles form a closed set (superadmin, orgadmin, manager, staff_employee,
// viewer); raw role strings from the backend are normalized through ToRole,
// which rewrites legacy aliases and collapses anything unrecognized to the
// viewer role. Permission checks against the built-in matrix are pure,
// synchronous and deterministic, and unknown roles always fail closed.
//
// Basic usage:
//
//	role := rbac.ToRole(user.Role) // "technician" -> staff_employee
//
//	if rbac.HasPermission(role, rbac.PermManageWorkOrders) {
//	    // show the edit button
//	}
//
//	if rbac.HasAnyPermission(role, rbac.PermViewReports, rbac.PermExportReports) {
//	    // show the reports section
//	}
//
// Deployments that need different grants load a custom matrix at startup:
//
//	f, _ := os.Open("roles.yaml")
//	eval, err := rbac.NewEvaluator(ctx, rbac.NewYAMLRoleSource(f))
//
// HasAllPermissions is vacuously true for an empty permission list. Call
// sites that mean "requires at least one permission" must assert a non-empty
// list themselves.
package rbac
