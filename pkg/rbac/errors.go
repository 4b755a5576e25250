package rbac

import "errors"

// Domain errors for RBAC matrix loading.
var (
	// ErrMatrixLoad is returned when a role matrix cannot be read or parsed.
	ErrMatrixLoad = errors.New("rbac.matrix_load_failed")

	// ErrUnknownPermission is returned when a custom matrix grants a
	// permission that is not part of the closed permission set.
	ErrUnknownPermission = errors.New("rbac.unknown_permission")
)
