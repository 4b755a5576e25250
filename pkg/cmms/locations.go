package cmms

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/maintboard/cmmskit/pkg/apiclient"
)

// Location is a physical site or an area within one; locations nest through
// ParentID.
type Location struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address,omitempty"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// LocationParams carries the writable location fields.
type LocationParams struct {
	Name     string     `json:"name"`
	Address  string     `json:"address,omitempty"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// LocationsService exposes the location endpoints.
type LocationsService struct {
	api *apiclient.Client
}

// NewLocations creates the locations service.
func NewLocations(api *apiclient.Client) *LocationsService {
	return &LocationsService{api: api}
}

func (s *LocationsService) List(ctx context.Context, params ListParams) (Page[Location], error) {
	return apiclient.Get[Page[Location]](ctx, s.api, "/locations"+params.encode())
}

func (s *LocationsService) Get(ctx context.Context, id uuid.UUID) (Location, error) {
	return apiclient.Get[Location](ctx, s.api, "/locations/"+id.String())
}

func (s *LocationsService) Create(ctx context.Context, params LocationParams) (Location, error) {
	return apiclient.Post[Location](ctx, s.api, "/locations", params)
}

func (s *LocationsService) Update(ctx context.Context, id uuid.UUID, params LocationParams) (Location, error) {
	return apiclient.Put[Location](ctx, s.api, "/locations/"+id.String(), params)
}

func (s *LocationsService) Delete(ctx context.Context, id uuid.UUID) error {
	return apiclient.Delete(ctx, s.api, "/locations/"+id.String())
}
