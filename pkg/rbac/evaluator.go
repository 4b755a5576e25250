package rbac

import "context"

// Evaluator answers permission queries against a custom role matrix loaded
// from a RoleSource. Deployments that need different grants than the built-in
// matrix construct one at startup; the grant map is treated as immutable
// afterwards, so all methods are safe for concurrent use.
//
// The zero set of package-level functions (HasPermission and friends) covers
// the common case of the built-in matrix.
type Evaluator struct {
	grants map[Role]map[Permission]bool
}

// NewEvaluator builds an Evaluator from the given source. Every known role
// missing from the source gets an explicit empty entry, so evaluation stays
// total over the closed role set.
func NewEvaluator(ctx context.Context, source RoleSource) (*Evaluator, error) {
	loaded, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	grants := make(map[Role]map[Permission]bool, len(Roles()))
	for _, role := range Roles() {
		grants[role] = map[Permission]bool{}
	}
	for role, perms := range loaded {
		set := grants[role]
		if set == nil {
			set = map[Permission]bool{}
			grants[role] = set
		}
		for _, p := range perms {
			set[p] = true
		}
	}

	return &Evaluator{grants: grants}, nil
}

// HasPermission reports whether the role is granted the permission under this
// evaluator's matrix. Unknown roles fail closed.
func (e *Evaluator) HasPermission(role Role, permission Permission) bool {
	granted, ok := e.grants[role]
	if !ok {
		return false
	}
	return granted[permission]
}

// HasAnyPermission reports whether the role is granted at least one of the
// given permissions.
func (e *Evaluator) HasAnyPermission(role Role, permissions ...Permission) bool {
	for _, p := range permissions {
		if e.HasPermission(role, p) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether the role is granted every one of the
// given permissions. Vacuously true for an empty list.
func (e *Evaluator) HasAllPermissions(role Role, permissions ...Permission) bool {
	for _, p := range permissions {
		if !e.HasPermission(role, p) {
			return false
		}
	}
	return true
}

// RolePermissionsFor returns this evaluator's grant mapping for the role.
// Unknown roles return a non-nil empty mapping.
func (e *Evaluator) RolePermissionsFor(role Role) RolePermissions {
	granted, ok := e.grants[role]
	if !ok {
		return RolePermissions{}
	}
	return RolePermissions(clone(granted))
}
