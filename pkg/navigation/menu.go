package navigation

import "github.com/maintboard/cmmskit/pkg/rbac"

// DefaultMenu is the standard CMMS admin menu. Applications that need a
// different layout build their own registry; this one covers the stock
// screens with their stock visibility rules.
func DefaultMenu() *Registry {
	return NewRegistry(
		Item{
			ID:      "dashboard",
			Label:   "Dashboard",
			Path:    "/dashboard",
			Icon:    "gauge",
			Visible: Permitted(rbac.PermViewDashboards),
		},
		Item{
			ID:      "work-orders",
			Label:   "Work Orders",
			Path:    "/work-orders",
			Icon:    "clipboard",
			Visible: Authenticated(),
		},
		Item{
			ID:      "assets",
			Label:   "Assets",
			Path:    "/assets",
			Icon:    "wrench",
			Visible: Permitted(rbac.PermManageAssets),
		},
		Item{
			ID:      "locations",
			Label:   "Locations",
			Path:    "/locations",
			Icon:    "map-pin",
			Visible: Permitted(rbac.PermManageLocations),
		},
		Item{
			ID:      "maintenance",
			Label:   "Preventive Maintenance",
			Path:    "/maintenance",
			Icon:    "calendar",
			Visible: Permitted(rbac.PermManageMaintenance),
		},
		Item{
			ID:      "organizations",
			Label:   "Organizations",
			Path:    "/organizations",
			Icon:    "building",
			Visible: Roles(rbac.RoleSuperadmin),
		},
		Item{
			ID:      "reports",
			Label:   "Reports",
			Path:    "/reports",
			Icon:    "chart",
			Visible: Permitted(rbac.PermViewReports),
		},
		Item{
			ID:      "users",
			Label:   "Users",
			Path:    "/users",
			Icon:    "users",
			Visible: Permitted(rbac.PermManageUsers),
		},
		Item{
			ID:      "settings",
			Label:   "Settings",
			Path:    "/settings",
			Icon:    "cog",
			Visible: Permitted(rbac.PermManageSettings),
		},
	)
}
