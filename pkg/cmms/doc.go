// Package cmms provides typed clients for the CMMS backend's resource
// endpoints: work orders, assets, locations, preventive maintenance
// schedules, organizations and reports.
//
// The services are deliberately thin wrappers over the shared API client.
// They carry no business logic of their own; authorization, refresh and
// error normalization all happen in the client's middleware chain, and every
// failure surfaces as a normalized *apiclient.Error.
//
//	workOrders := cmms.NewWorkOrders(sessions.Client())
//	page, err := workOrders.List(ctx, cmms.ListParams{Page: 1, PerPage: 25})
package cmms
