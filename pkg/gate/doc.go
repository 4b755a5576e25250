// Package gate provides role-based visibility gating for UI rendering and
// HTTP routing.
//
// Two flavors exist, both pure presentation logic with no state of their
// own. The declarative RoleGate wraps templ components:
//
//	gate.RoleGate(session,
//	    []rbac.Role{rbac.RoleManager, rbac.RoleOrgAdmin},
//	    editButton, nil)
//
// and the middleware guards routes:
//
//	r.With(gate.RequireRole(rbac.RoleOrgAdmin)).Get("/users", listUsers)
//	r.With(gate.RequirePermission(rbac.PermViewReports)).Get("/reports", reports)
//
// Gating is binary per render and fails closed: the absence of a session
// denies everything that is not explicitly public.
package gate
