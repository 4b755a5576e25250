package cmms

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/maintboard/cmmskit/pkg/apiclient"
)

// Schedule is a preventive maintenance schedule that spawns work orders on a
// fixed cadence.
type Schedule struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	AssetID       uuid.UUID `json:"asset_id"`
	FrequencyDays int       `json:"frequency_days"`
	NextDueAt     time.Time `json:"next_due_at"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ScheduleParams carries the writable schedule fields.
type ScheduleParams struct {
	Name          string    `json:"name"`
	AssetID       uuid.UUID `json:"asset_id"`
	FrequencyDays int       `json:"frequency_days"`
	Active        *bool     `json:"active,omitempty"`
}

// MaintenanceService exposes the preventive maintenance endpoints.
type MaintenanceService struct {
	api *apiclient.Client
}

// NewMaintenance creates the maintenance service.
func NewMaintenance(api *apiclient.Client) *MaintenanceService {
	return &MaintenanceService{api: api}
}

func (s *MaintenanceService) List(ctx context.Context, params ListParams) (Page[Schedule], error) {
	return apiclient.Get[Page[Schedule]](ctx, s.api, "/maintenance/schedules"+params.encode())
}

func (s *MaintenanceService) Get(ctx context.Context, id uuid.UUID) (Schedule, error) {
	return apiclient.Get[Schedule](ctx, s.api, "/maintenance/schedules/"+id.String())
}

func (s *MaintenanceService) Create(ctx context.Context, params ScheduleParams) (Schedule, error) {
	return apiclient.Post[Schedule](ctx, s.api, "/maintenance/schedules", params)
}

func (s *MaintenanceService) Update(ctx context.Context, id uuid.UUID, params ScheduleParams) (Schedule, error) {
	return apiclient.Put[Schedule](ctx, s.api, "/maintenance/schedules/"+id.String(), params)
}

func (s *MaintenanceService) Delete(ctx context.Context, id uuid.UUID) error {
	return apiclient.Delete(ctx, s.api, "/maintenance/schedules/"+id.String())
}
