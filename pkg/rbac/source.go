package rbac

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// RoleSource provides role grant data for evaluators built on a custom matrix.
type RoleSource interface {
	// Load returns the granted permissions per role.
	Load(ctx context.Context) (map[Role][]Permission, error)
}

// inMemRoleSource serves grants from memory with defensive copies.
type inMemRoleSource struct {
	mu     sync.RWMutex
	grants map[Role][]Permission
}

// NewInMemRoleSource creates a RoleSource backed by the given grant map.
// The input is deep-copied to prevent external modification.
func NewInMemRoleSource(grants map[Role][]Permission) RoleSource {
	grantsCopy := make(map[Role][]Permission, len(grants))
	for role, perms := range grants {
		permsCopy := make([]Permission, len(perms))
		copy(permsCopy, perms)
		grantsCopy[role] = permsCopy
	}

	return &inMemRoleSource{grants: grantsCopy}
}

func (s *inMemRoleSource) Load(ctx context.Context) (map[Role][]Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// The evaluator treats the returned map as read-only.
	return s.grants, nil
}

// yamlRoleSource parses a role matrix from a YAML document of the form:
//
//	manager:
//	  - manage_work_orders
//	  - view_reports
//	viewer:
//	  - view_dashboards
type yamlRoleSource struct {
	r io.Reader
}

// NewYAMLRoleSource creates a RoleSource that reads a role→permissions
// mapping from the given reader. Role names are normalized through ToRole,
// so legacy aliases in config files resolve to their current roles. Unknown
// permission names are rejected to surface config typos at startup instead
// of silently denying access later.
func NewYAMLRoleSource(r io.Reader) RoleSource {
	return &yamlRoleSource{r: r}
}

func (s *yamlRoleSource) Load(ctx context.Context) (map[Role][]Permission, error) {
	raw, err := io.ReadAll(s.r)
	if err != nil {
		return nil, errors.Join(ErrMatrixLoad, err)
	}

	var doc map[string][]string
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Join(ErrMatrixLoad, err)
	}

	known := make(map[Permission]bool, len(Permissions()))
	for _, p := range Permissions() {
		known[p] = true
	}

	grants := make(map[Role][]Permission, len(doc))
	for name, perms := range doc {
		role := ToRole(name)
		for _, p := range perms {
			perm := Permission(p)
			if !known[perm] {
				return nil, errors.Join(ErrUnknownPermission, fmt.Errorf("role %q grants unknown permission %q", name, p))
			}
			grants[role] = append(grants[role], perm)
		}
	}

	return grants, nil
}
