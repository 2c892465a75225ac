package store

import (
	"context"

	"mobileshop-server/gateway"
	"mobileshop-server/models"

	"github.com/google/uuid"
)

const subcategoriesTable = "accessory_subcategories"

type SubcategoryStore struct {
	gw gateway.Client
}

func NewSubcategoryStore(gw gateway.Client) *SubcategoryStore {
	return &SubcategoryStore{gw: gw}
}

type SubcategoryInput struct {
	CategoryID  uuid.UUID
	Name        string
	Description *string
	ImageURL    *string
}

func (in SubcategoryInput) validate() error {
	if in.CategoryID == uuid.Nil {
		return &gateway.ValidationError{Field: "category_id", Message: "category_id is required"}
	}
	return required("name", in.Name)
}

func (in SubcategoryInput) row() gateway.Row {
	return gateway.Row{
		"category_id": in.CategoryID,
		"name":        in.Name,
		"description": optString(in.Description),
		"image_url":   optString(in.ImageURL),
	}
}

func (s *SubcategoryStore) List(ctx context.Context) ([]models.Subcategory, error) {
	return s.list(ctx, nil)
}

func (s *SubcategoryStore) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Subcategory, error) {
	return s.list(ctx, map[string]any{"category_id": categoryID})
}

func (s *SubcategoryStore) list(ctx context.Context, filter map[string]any) ([]models.Subcategory, error) {
	rows, err := s.gw.Query(ctx, subcategoriesTable, gateway.QueryOptions{Filter: filter, OrderBy: "name"})
	if err != nil {
		return nil, err
	}
	subcategories := make([]models.Subcategory, 0, len(rows))
	for _, r := range rows {
		subcategories = append(subcategories, subcategoryFromRow(r))
	}
	return subcategories, nil
}

func (s *SubcategoryStore) Get(ctx context.Context, id uuid.UUID) (models.Subcategory, error) {
	rows, err := s.gw.Query(ctx, subcategoriesTable, gateway.QueryOptions{Filter: map[string]any{"id": id}})
	if err != nil {
		return models.Subcategory{}, err
	}
	if len(rows) == 0 {
		return models.Subcategory{}, notFound("query", subcategoriesTable, id)
	}
	return subcategoryFromRow(rows[0]), nil
}

func (s *SubcategoryStore) Create(ctx context.Context, in SubcategoryInput) (models.Subcategory, error) {
	if err := in.validate(); err != nil {
		return models.Subcategory{}, err
	}
	row, err := s.gw.Insert(ctx, subcategoriesTable, in.row())
	if err != nil {
		return models.Subcategory{}, err
	}
	return subcategoryFromRow(row), nil
}

func (s *SubcategoryStore) Update(ctx context.Context, id uuid.UUID, in SubcategoryInput) (models.Subcategory, error) {
	if err := in.validate(); err != nil {
		return models.Subcategory{}, err
	}
	row, err := s.gw.Update(ctx, subcategoriesTable, id, in.row())
	if err != nil {
		return models.Subcategory{}, err
	}
	return subcategoryFromRow(row), nil
}

func (s *SubcategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.gw.Delete(ctx, subcategoriesTable, id)
}

func subcategoryFromRow(r gateway.Row) models.Subcategory {
	return models.Subcategory{
		ID:          rowUUID(r, "id"),
		CategoryID:  rowUUID(r, "category_id"),
		Name:        rowString(r, "name"),
		Description: rowStringPtr(r, "description"),
		ImageURL:    rowStringPtr(r, "image_url"),
		CreatedAt:   rowTime(r, "created_at"),
		UpdatedAt:   rowTime(r, "updated_at"),
	}
}

func SubcategoryDraft(s models.Subcategory) map[string]string {
	return map[string]string{
		"category_id": s.CategoryID.String(),
		"name":        s.Name,
		"description": derefString(s.Description),
		"image_url":   derefString(s.ImageURL),
	}
}

func SubcategoryInputFromDraft(d map[string]string) (SubcategoryInput, error) {
	if err := required("category_id", d["category_id"]); err != nil {
		return SubcategoryInput{}, err
	}
	categoryID, err := draftUUID("category_id", d["category_id"])
	if err != nil {
		return SubcategoryInput{}, err
	}
	return SubcategoryInput{
		CategoryID:  categoryID,
		Name:        d["name"],
		Description: draftString(d["description"]),
		ImageURL:    draftString(d["image_url"]),
	}, nil
}
