package gate

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/maintboard/cmmskit/pkg/authsession"
	"github.com/maintboard/cmmskit/pkg/rbac"
)

// Allowed reports whether the current role is one of the allowed roles.
// OR semantics: a single match grants access. An empty allowed list denies.
func Allowed(current rbac.Role, allowed ...rbac.Role) bool {
	for _, role := range allowed {
		if current == role {
			return true
		}
	}
	return false
}

// RoleGate returns a component that renders children when the session is
// authenticated and its role matches one of the allowed roles, and fallback
// otherwise. A nil fallback renders nothing. Gating is instantaneous and
// binary per render: without a session nothing non-public ever renders.
func RoleGate(session authsession.Session, allowed []rbac.Role, children, fallback templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if session.IsAuthenticated && session.User != nil && Allowed(session.User.Role, allowed...) {
			return children.Render(ctx, w)
		}
		if fallback != nil {
			return fallback.Render(ctx, w)
		}
		return nil
	})
}

// PermissionGate returns a component that renders children when the session
// role is granted the permission, and fallback otherwise.
func PermissionGate(session authsession.Session, permission rbac.Permission, children, fallback templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if session.IsAuthenticated && session.User != nil && rbac.HasPermission(session.User.Role, permission) {
			return children.Render(ctx, w)
		}
		if fallback != nil {
			return fallback.Render(ctx, w)
		}
		return nil
	})
}
