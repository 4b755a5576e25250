package cmms

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/maintboard/cmmskit/pkg/apiclient"
)

// Asset is a maintainable piece of equipment.
type Asset struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Model        string     `json:"model,omitempty"`
	SerialNumber string     `json:"serial_number,omitempty"`
	Status       string     `json:"status"`
	LocationID   *uuid.UUID `json:"location_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// AssetParams carries the writable asset fields.
type AssetParams struct {
	Name         string     `json:"name"`
	Model        string     `json:"model,omitempty"`
	SerialNumber string     `json:"serial_number,omitempty"`
	Status       string     `json:"status,omitempty"`
	LocationID   *uuid.UUID `json:"location_id,omitempty"`
}

// AssetsService exposes the asset endpoints.
type AssetsService struct {
	api *apiclient.Client
}

// NewAssets creates the assets service.
func NewAssets(api *apiclient.Client) *AssetsService {
	return &AssetsService{api: api}
}

func (s *AssetsService) List(ctx context.Context, params ListParams) (Page[Asset], error) {
	return apiclient.Get[Page[Asset]](ctx, s.api, "/assets"+params.encode())
}

func (s *AssetsService) Get(ctx context.Context, id uuid.UUID) (Asset, error) {
	return apiclient.Get[Asset](ctx, s.api, "/assets/"+id.String())
}

func (s *AssetsService) Create(ctx context.Context, params AssetParams) (Asset, error) {
	return apiclient.Post[Asset](ctx, s.api, "/assets", params)
}

func (s *AssetsService) Update(ctx context.Context, id uuid.UUID, params AssetParams) (Asset, error) {
	return apiclient.Put[Asset](ctx, s.api, "/assets/"+id.String(), params)
}

func (s *AssetsService) Delete(ctx context.Context, id uuid.UUID) error {
	return apiclient.Delete(ctx, s.api, "/assets/"+id.String())
}
