package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maintboard/cmmskit/pkg/authsession"
	"github.com/maintboard/cmmskit/pkg/navigation"
	"github.com/maintboard/cmmskit/pkg/rbac"
)

func sessionWithRole(role rbac.Role) authsession.Session {
	return authsession.Session{
		User:            &authsession.User{ID: "u-1", Role: role},
		IsAuthenticated: true,
	}
}

func ids(items []navigation.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestRegistry_Visible(t *testing.T) {
	t.Parallel()

	registry := navigation.NewRegistry(
		navigation.Item{ID: "home", Label: "Home", Path: "/", Visible: navigation.Anyone()},
		navigation.Item{ID: "orders", Label: "Work Orders", Path: "/work-orders", Visible: navigation.Authenticated()},
		navigation.Item{ID: "admin", Label: "Admin", Path: "/admin", Visible: navigation.Roles(rbac.RoleOrgAdmin, rbac.RoleSuperadmin)},
		navigation.Item{ID: "reports", Label: "Reports", Path: "/reports", Visible: navigation.Permitted(rbac.PermViewReports)},
		navigation.Item{ID: "unspecified", Label: "Oops", Path: "/oops"},
	)

	tests := []struct {
		name    string
		session authsession.Session
		want    []string
	}{
		{
			name:    "anonymous sees public entries only",
			session: authsession.Session{},
			want:    []string{"home"},
		},
		{
			name:    "staff sees authenticated entries",
			session: sessionWithRole(rbac.RoleStaffEmployee),
			want:    []string{"home", "orders", "unspecified"},
		},
		{
			name:    "viewer gains permission-gated reports",
			session: sessionWithRole(rbac.RoleViewer),
			want:    []string{"home", "orders", "reports", "unspecified"},
		},
		{
			name:    "orgadmin sees role-gated admin",
			session: sessionWithRole(rbac.RoleOrgAdmin),
			want:    []string{"home", "orders", "admin", "reports", "unspecified"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ids(registry.Visible(tt.session)))
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := navigation.DefaultMenu()

	item, ok := registry.Lookup("work-orders")
	require.True(t, ok)
	assert.Equal(t, "/work-orders", item.Path)

	_, ok = registry.Lookup("nonexistent")
	assert.False(t, ok)
}

func TestDefaultMenu(t *testing.T) {
	t.Parallel()

	menu := navigation.DefaultMenu()

	t.Run("anonymous sees nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, menu.Visible(authsession.Session{}))
	})

	t.Run("superadmin sees everything", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, menu.Visible(sessionWithRole(rbac.RoleSuperadmin)), 9)
	})

	t.Run("organizations is superadmin only", func(t *testing.T) {
		t.Parallel()
		assert.NotContains(t, ids(menu.Visible(sessionWithRole(rbac.RoleOrgAdmin))), "organizations")
		assert.Contains(t, ids(menu.Visible(sessionWithRole(rbac.RoleSuperadmin))), "organizations")
	})

	t.Run("staff menu is minimal", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"dashboard", "work-orders"}, ids(menu.Visible(sessionWithRole(rbac.RoleStaffEmployee))))
	})
}
