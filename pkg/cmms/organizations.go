package cmms

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/maintboard/cmmskit/pkg/apiclient"
)

// Organization is a tenant in the CMMS.
type Organization struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrganizationParams carries the writable organization fields.
type OrganizationParams struct {
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// OrganizationsService exposes the organization endpoints. The backend
// restricts these to platform administrators; the client surfaces its 403s
// through the normalized error like any other request.
type OrganizationsService struct {
	api *apiclient.Client
}

// NewOrganizations creates the organizations service.
func NewOrganizations(api *apiclient.Client) *OrganizationsService {
	return &OrganizationsService{api: api}
}

func (s *OrganizationsService) List(ctx context.Context, params ListParams) (Page[Organization], error) {
	return apiclient.Get[Page[Organization]](ctx, s.api, "/organizations"+params.encode())
}

func (s *OrganizationsService) Get(ctx context.Context, id uuid.UUID) (Organization, error) {
	return apiclient.Get[Organization](ctx, s.api, "/organizations/"+id.String())
}

func (s *OrganizationsService) Create(ctx context.Context, params OrganizationParams) (Organization, error) {
	return apiclient.Post[Organization](ctx, s.api, "/organizations", params)
}

func (s *OrganizationsService) Update(ctx context.Context, id uuid.UUID, params OrganizationParams) (Organization, error) {
	return apiclient.Put[Organization](ctx, s.api, "/organizations/"+id.String(), params)
}
