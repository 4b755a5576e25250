package rbac

// Permission is a fine-grained named capability checked at call sites that
// need finer control than role membership alone.
type Permission string

const (
	PermManageUsers         Permission = "manage_users"
	PermManageOrganizations Permission = "manage_organizations"
	PermManageAssets        Permission = "manage_assets"
	PermManageLocations     Permission = "manage_locations"
	PermManageWorkOrders    Permission = "manage_work_orders"
	PermAssignWorkOrders    Permission = "assign_work_orders"
	PermCompleteWorkOrders  Permission = "complete_work_orders"
	PermManageMaintenance   Permission = "manage_maintenance"
	PermViewReports         Permission = "view_reports"
	PermExportReports       Permission = "export_reports"
	PermViewDashboards      Permission = "view_dashboards"
	PermManageSettings      Permission = "manage_settings"
)

// Permissions returns all known permissions.
func Permissions() []Permission {
	return []Permission{
		PermManageUsers,
		PermManageOrganizations,
		PermManageAssets,
		PermManageLocations,
		PermManageWorkOrders,
		PermAssignWorkOrders,
		PermCompleteWorkOrders,
		PermManageMaintenance,
		PermViewReports,
		PermExportReports,
		PermViewDashboards,
		PermManageSettings,
	}
}
