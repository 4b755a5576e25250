package cmms

import (
	"context"
	"strconv"

	"github.com/maintboard/cmmskit/pkg/apiclient"
)

// Summary is the dashboard headline figures.
type Summary struct {
	OpenWorkOrders      int `json:"open_work_orders"`
	OverdueWorkOrders   int `json:"overdue_work_orders"`
	CompletedThisMonth  int `json:"completed_this_month"`
	AssetsOutOfService  int `json:"assets_out_of_service"`
	UpcomingMaintenance int `json:"upcoming_maintenance"`
}

// TrendPoint is one month of work order throughput.
type TrendPoint struct {
	Month     string `json:"month"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

// ReportsService exposes the reporting endpoints.
type ReportsService struct {
	api *apiclient.Client
}

// NewReports creates the reports service.
func NewReports(api *apiclient.Client) *ReportsService {
	return &ReportsService{api: api}
}

// Summary fetches the dashboard headline figures.
func (s *ReportsService) Summary(ctx context.Context) (Summary, error) {
	return apiclient.Get[Summary](ctx, s.api, "/reports/summary")
}

// WorkOrderTrends fetches monthly throughput for the trailing number of
// months.
func (s *ReportsService) WorkOrderTrends(ctx context.Context, months int) ([]TrendPoint, error) {
	return apiclient.Get[[]TrendPoint](ctx, s.api, "/reports/work-order-trends?months="+strconv.Itoa(months))
}
