package store

import (
	"context"

	"mobileshop-server/gateway"
	"mobileshop-server/models"

	"github.com/google/uuid"
)

const categoriesTable = "accessory_categories"

type CategoryStore struct {
	gw gateway.Client
}

func NewCategoryStore(gw gateway.Client) *CategoryStore {
	return &CategoryStore{gw: gw}
}

type CategoryInput struct {
	Name        string
	Description *string
	Icon        *string
	ImageURL    *string
}

func (in CategoryInput) validate() error {
	return required("name", in.Name)
}

func (in CategoryInput) row() gateway.Row {
	return gateway.Row{
		"name":        in.Name,
		"description": optString(in.Description),
		"icon":        optString(in.Icon),
		"image_url":   optString(in.ImageURL),
	}
}

func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	rows, err := s.gw.Query(ctx, categoriesTable, gateway.QueryOptions{OrderBy: "name"})
	if err != nil {
		return nil, err
	}
	categories := make([]models.Category, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, categoryFromRow(r))
	}
	return categories, nil
}

func (s *CategoryStore) Get(ctx context.Context, id uuid.UUID) (models.Category, error) {
	rows, err := s.gw.Query(ctx, categoriesTable, gateway.QueryOptions{Filter: map[string]any{"id": id}})
	if err != nil {
		return models.Category{}, err
	}
	if len(rows) == 0 {
		return models.Category{}, notFound("query", categoriesTable, id)
	}
	return categoryFromRow(rows[0]), nil
}

func (s *CategoryStore) Create(ctx context.Context, in CategoryInput) (models.Category, error) {
	if err := in.validate(); err != nil {
		return models.Category{}, err
	}
	row, err := s.gw.Insert(ctx, categoriesTable, in.row())
	if err != nil {
		return models.Category{}, err
	}
	return categoryFromRow(row), nil
}

func (s *CategoryStore) Update(ctx context.Context, id uuid.UUID, in CategoryInput) (models.Category, error) {
	if err := in.validate(); err != nil {
		return models.Category{}, err
	}
	row, err := s.gw.Update(ctx, categoriesTable, id, in.row())
	if err != nil {
		return models.Category{}, err
	}
	return categoryFromRow(row), nil
}

func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.gw.Delete(ctx, categoriesTable, id)
}

func categoryFromRow(r gateway.Row) models.Category {
	return models.Category{
		ID:          rowUUID(r, "id"),
		Name:        rowString(r, "name"),
		Description: rowStringPtr(r, "description"),
		Icon:        rowStringPtr(r, "icon"),
		ImageURL:    rowStringPtr(r, "image_url"),
		CreatedAt:   rowTime(r, "created_at"),
		UpdatedAt:   rowTime(r, "updated_at"),
	}
}

func CategoryDraft(c models.Category) map[string]string {
	return map[string]string{
		"name":        c.Name,
		"description": derefString(c.Description),
		"icon":        derefString(c.Icon),
		"image_url":   derefString(c.ImageURL),
	}
}

func CategoryInputFromDraft(d map[string]string) (CategoryInput, error) {
	return CategoryInput{
		Name:        d["name"],
		Description: draftString(d["description"]),
		Icon:        draftString(d["icon"]),
		ImageURL:    draftString(d["image_url"]),
	}, nil
}
