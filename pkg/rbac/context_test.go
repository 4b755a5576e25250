package rbac_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maintboard/cmmskit/pkg/rbac"
)

func TestRoleContext(t *testing.T) {
	t.Parallel()

	ctx := rbac.SetRoleToContext(context.Background(), rbac.RoleManager)

	role, ok := rbac.GetRoleFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, rbac.RoleManager, role)
	assert.True(t, rbac.HasPermission(role, rbac.PermManageWorkOrders))
}

func TestRoleContext_Missing(t *testing.T) {
	t.Parallel()

	role, ok := rbac.GetRoleFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, role)

	// Handlers that skip the ok check still get denial, not a grant.
	assert.False(t, rbac.HasPermission(role, rbac.PermViewDashboards))
}
