package store

import (
	"context"

	"mobileshop-server/gateway"
	"mobileshop-server/models"

	"github.com/google/uuid"
)

const brandsTable = "brands"

type BrandStore struct {
	gw gateway.Client
}

func NewBrandStore(gw gateway.Client) *BrandStore {
	return &BrandStore{gw: gw}
}

// BrandInput carries every writable brand field. Updates are wholesale.
type BrandInput struct {
	Name        string
	Description *string
	LogoURL     *string
}

func (in BrandInput) validate() error {
	return required("name", in.Name)
}

func (in BrandInput) row() gateway.Row {
	return gateway.Row{
		"name":        in.Name,
		"description": optString(in.Description),
		"logo_url":    optString(in.LogoURL),
	}
}

func (s *BrandStore) List(ctx context.Context) ([]models.Brand, error) {
	rows, err := s.gw.Query(ctx, brandsTable, gateway.QueryOptions{OrderBy: "created_at", Descending: true})
	if err != nil {
		return nil, err
	}
	brands := make([]models.Brand, 0, len(rows))
	for _, r := range rows {
		brands = append(brands, brandFromRow(r))
	}
	return brands, nil
}

func (s *BrandStore) Get(ctx context.Context, id uuid.UUID) (models.Brand, error) {
	rows, err := s.gw.Query(ctx, brandsTable, gateway.QueryOptions{Filter: map[string]any{"id": id}})
	if err != nil {
		return models.Brand{}, err
	}
	if len(rows) == 0 {
		return models.Brand{}, notFound("query", brandsTable, id)
	}
	return brandFromRow(rows[0]), nil
}

func (s *BrandStore) Create(ctx context.Context, in BrandInput) (models.Brand, error) {
	if err := in.validate(); err != nil {
		return models.Brand{}, err
	}
	row, err := s.gw.Insert(ctx, brandsTable, in.row())
	if err != nil {
		return models.Brand{}, err
	}
	return brandFromRow(row), nil
}

func (s *BrandStore) Update(ctx context.Context, id uuid.UUID, in BrandInput) (models.Brand, error) {
	if err := in.validate(); err != nil {
		return models.Brand{}, err
	}
	row, err := s.gw.Update(ctx, brandsTable, id, in.row())
	if err != nil {
		return models.Brand{}, err
	}
	return brandFromRow(row), nil
}

func (s *BrandStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.gw.Delete(ctx, brandsTable, id)
}

func brandFromRow(r gateway.Row) models.Brand {
	return models.Brand{
		ID:          rowUUID(r, "id"),
		Name:        rowString(r, "name"),
		Description: rowStringPtr(r, "description"),
		LogoURL:     rowStringPtr(r, "logo_url"),
		CreatedAt:   rowTime(r, "created_at"),
		UpdatedAt:   rowTime(r, "updated_at"),
	}
}

// BrandDraft renders a brand in the display form the edit flow works with.
func BrandDraft(b models.Brand) map[string]string {
	return map[string]string{
		"name":        b.Name,
		"description": derefString(b.Description),
		"logo_url":    derefString(b.LogoURL),
	}
}

// BrandInputFromDraft converts a draft back to a typed input.
func BrandInputFromDraft(d map[string]string) (BrandInput, error) {
	return BrandInput{
		Name:        d["name"],
		Description: draftString(d["description"]),
		LogoURL:     draftString(d["logo_url"]),
	}, nil
}
