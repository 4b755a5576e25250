package rbac

import "context"

// roleCtxKey is the context key for storing the session role.
type roleCtxKey struct{}

// SetRoleToContext stores the session's effective role in the context. The
// portal's session middleware calls this once per request.
func SetRoleToContext(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleCtxKey{}, role)
}

// GetRoleFromContext retrieves the session's role from the context. It is
// the read side of the context pair for application handlers and view code
// that check permissions without threading a session value through every
// call:
//
//	if role, ok := rbac.GetRoleFromContext(ctx); ok && rbac.HasPermission(role, rbac.PermExportReports) {
//		// render the export button
//	}
//
// Absence means the request never passed the session middleware; treat it as
// no role and deny.
func GetRoleFromContext(ctx context.Context) (Role, bool) {
	role, ok := ctx.Value(roleCtxKey{}).(Role)
	return role, ok
}
