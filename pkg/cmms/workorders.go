package cmms

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/maintboard/cmmskit/pkg/apiclient"
)

// WorkOrderStatus is the work order lifecycle status as reported by the
// backend.
type WorkOrderStatus string

const (
	WorkOrderOpen       WorkOrderStatus = "open"
	WorkOrderInProgress WorkOrderStatus = "in_progress"
	WorkOrderOnHold     WorkOrderStatus = "on_hold"
	WorkOrderComplete   WorkOrderStatus = "complete"
)

// WorkOrder is a maintenance work order.
type WorkOrder struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      WorkOrderStatus `json:"status"`
	Priority    string          `json:"priority"`
	AssetID     *uuid.UUID      `json:"asset_id,omitempty"`
	LocationID  *uuid.UUID      `json:"location_id,omitempty"`
	AssigneeID  string          `json:"assignee_id,omitempty"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// WorkOrderParams carries the writable work order fields for create and
// update calls.
type WorkOrderParams struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	AssetID     *uuid.UUID `json:"asset_id,omitempty"`
	LocationID  *uuid.UUID `json:"location_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// WorkOrdersService exposes the work order endpoints. It holds no state
// beyond the shared API client; every failure is a normalized
// *apiclient.Error for the calling screen to display.
type WorkOrdersService struct {
	api *apiclient.Client
}

// NewWorkOrders creates the work orders service.
func NewWorkOrders(api *apiclient.Client) *WorkOrdersService {
	return &WorkOrdersService{api: api}
}

func (s *WorkOrdersService) List(ctx context.Context, params ListParams) (Page[WorkOrder], error) {
	return apiclient.Get[Page[WorkOrder]](ctx, s.api, "/work-orders"+params.encode())
}

func (s *WorkOrdersService) Get(ctx context.Context, id uuid.UUID) (WorkOrder, error) {
	return apiclient.Get[WorkOrder](ctx, s.api, "/work-orders/"+id.String())
}

func (s *WorkOrdersService) Create(ctx context.Context, params WorkOrderParams) (WorkOrder, error) {
	return apiclient.Post[WorkOrder](ctx, s.api, "/work-orders", params)
}

func (s *WorkOrdersService) Update(ctx context.Context, id uuid.UUID, params WorkOrderParams) (WorkOrder, error) {
	return apiclient.Put[WorkOrder](ctx, s.api, "/work-orders/"+id.String(), params)
}

func (s *WorkOrdersService) Delete(ctx context.Context, id uuid.UUID) error {
	return apiclient.Delete(ctx, s.api, "/work-orders/"+id.String())
}

// Assign sets the work order's assignee.
func (s *WorkOrdersService) Assign(ctx context.Context, id uuid.UUID, assigneeID string) (WorkOrder, error) {
	return apiclient.Post[WorkOrder](ctx, s.api, "/work-orders/"+id.String()+"/assign", map[string]string{
		"assignee_id": assigneeID,
	})
}

// UpdateStatus moves the work order through its lifecycle. Status
// transitions are validated server-side.
func (s *WorkOrdersService) UpdateStatus(ctx context.Context, id uuid.UUID, status WorkOrderStatus) (WorkOrder, error) {
	return apiclient.Patch[WorkOrder](ctx, s.api, "/work-orders/"+id.String()+"/status", map[string]string{
		"status": string(status),
	})
}
