package store

import (
	"context"
	"strconv"

	"mobileshop-server/gateway"
	"mobileshop-server/models"

	"github.com/google/uuid"
)

const productsTable = "accessory_products"

type ProductStore struct {
	gw gateway.Client
}

func NewProductStore(gw gateway.Client) *ProductStore {
	return &ProductStore{gw: gw}
}

// ProductInput carries every writable accessory product field. The
// subcategory is optional: products attach directly to a category when it
// has no subcategories.
type ProductInput struct {
	CategoryID    uuid.UUID
	SubcategoryID *uuid.UUID
	Name          string
	Price         float64
	OriginalPrice *float64
	Rating        *float64
	Reviews       *int
	ImageURL      *string
}

func (in ProductInput) validate() error {
	if in.CategoryID == uuid.Nil {
		return &gateway.ValidationError{Field: "category_id", Message: "category_id is required"}
	}
	if err := required("name", in.Name); err != nil {
		return err
	}
	if in.Price < 0 {
		return &gateway.ValidationError{Field: "price", Message: "price must not be negative"}
	}
	if in.OriginalPrice != nil && *in.OriginalPrice < 0 {
		return &gateway.ValidationError{Field: "original_price", Message: "original_price must not be negative"}
	}
	if in.Rating != nil && (*in.Rating < 0 || *in.Rating > 5) {
		return &gateway.ValidationError{Field: "rating", Message: "rating must be between 0 and 5"}
	}
	if in.Reviews != nil && *in.Reviews < 0 {
		return &gateway.ValidationError{Field: "reviews", Message: "reviews must not be negative"}
	}
	return nil
}

func (in ProductInput) row() gateway.Row {
	return gateway.Row{
		"category_id":    in.CategoryID,
		"subcategory_id": optUUID(in.SubcategoryID),
		"name":           in.Name,
		"price":          in.Price,
		"original_price": optFloat(in.OriginalPrice),
		"rating":         optFloat(in.Rating),
		"reviews":        optInt(in.Reviews),
		"image_url":      optString(in.ImageURL),
	}
}

func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	return s.list(ctx, nil)
}

func (s *ProductStore) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	return s.list(ctx, map[string]any{"category_id": categoryID})
}

func (s *ProductStore) ListBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]models.Product, error) {
	return s.list(ctx, map[string]any{"subcategory_id": subcategoryID})
}

func (s *ProductStore) list(ctx context.Context, filter map[string]any) ([]models.Product, error) {
	rows, err := s.gw.Query(ctx, productsTable, gateway.QueryOptions{Filter: filter, OrderBy: "name"})
	if err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, productFromRow(r))
	}
	return products, nil
}

func (s *ProductStore) Get(ctx context.Context, id uuid.UUID) (models.Product, error) {
	rows, err := s.gw.Query(ctx, productsTable, gateway.QueryOptions{Filter: map[string]any{"id": id}})
	if err != nil {
		return models.Product{}, err
	}
	if len(rows) == 0 {
		return models.Product{}, notFound("query", productsTable, id)
	}
	return productFromRow(rows[0]), nil
}

func (s *ProductStore) Create(ctx context.Context, in ProductInput) (models.Product, error) {
	if err := in.validate(); err != nil {
		return models.Product{}, err
	}
	row, err := s.gw.Insert(ctx, productsTable, in.row())
	if err != nil {
		return models.Product{}, err
	}
	return productFromRow(row), nil
}

func (s *ProductStore) Update(ctx context.Context, id uuid.UUID, in ProductInput) (models.Product, error) {
	if err := in.validate(); err != nil {
		return models.Product{}, err
	}
	row, err := s.gw.Update(ctx, productsTable, id, in.row())
	if err != nil {
		return models.Product{}, err
	}
	return productFromRow(row), nil
}

func (s *ProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.gw.Delete(ctx, productsTable, id)
}

func productFromRow(r gateway.Row) models.Product {
	return models.Product{
		ID:            rowUUID(r, "id"),
		CategoryID:    rowUUID(r, "category_id"),
		SubcategoryID: rowUUIDPtr(r, "subcategory_id"),
		Name:          rowString(r, "name"),
		Price:         rowFloat(r, "price"),
		OriginalPrice: rowFloatPtr(r, "original_price"),
		Rating:        rowFloatPtr(r, "rating"),
		Reviews:       rowIntPtr(r, "reviews"),
		ImageURL:      rowStringPtr(r, "image_url"),
		CreatedAt:     rowTime(r, "created_at"),
		UpdatedAt:     rowTime(r, "updated_at"),
	}
}

func ProductDraft(p models.Product) map[string]string {
	subcategoryID := ""
	if p.SubcategoryID != nil {
		subcategoryID = p.SubcategoryID.String()
	}
	reviews := ""
	if p.Reviews != nil {
		reviews = strconv.Itoa(*p.Reviews)
	}
	return map[string]string{
		"category_id":    p.CategoryID.String(),
		"subcategory_id": subcategoryID,
		"name":           p.Name,
		"price":          formatFloat(p.Price),
		"original_price": formatFloatPtr(p.OriginalPrice),
		"rating":         formatFloatPtr(p.Rating),
		"reviews":        reviews,
		"image_url":      derefString(p.ImageURL),
	}
}

func ProductInputFromDraft(d map[string]string) (ProductInput, error) {
	var in ProductInput

	for _, f := range []string{"category_id", "name", "price"} {
		if err := required(f, d[f]); err != nil {
			return in, err
		}
	}

	categoryID, err := draftUUID("category_id", d["category_id"])
	if err != nil {
		return in, err
	}
	subcategoryID, err := draftUUIDPtr("subcategory_id", d["subcategory_id"])
	if err != nil {
		return in, err
	}
	price, err := draftFloat("price", d["price"])
	if err != nil {
		return in, err
	}
	originalPrice, err := draftFloatPtr("original_price", d["original_price"])
	if err != nil {
		return in, err
	}
	rating, err := draftFloatPtr("rating", d["rating"])
	if err != nil {
		return in, err
	}
	reviews, err := draftIntPtr("reviews", d["reviews"])
	if err != nil {
		return in, err
	}

	in = ProductInput{
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Name:          d["name"],
		Price:         price,
		OriginalPrice: originalPrice,
		Rating:        rating,
		Reviews:       reviews,
		ImageURL:      draftString(d["image_url"]),
	}
	return in, nil
}
