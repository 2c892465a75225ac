package store

import (
	"context"
	"strconv"
	"strings"

	"mobileshop-server/gateway"
	"mobileshop-server/models"

	"github.com/google/uuid"
)

const phoneModelsTable = "phone_models"

type PhoneModelStore struct {
	gw gateway.Client
}

func NewPhoneModelStore(gw gateway.Client) *PhoneModelStore {
	return &PhoneModelStore{gw: gw}
}

type PhoneModelInput struct {
	BrandID       uuid.UUID
	Name          string
	Price         float64
	OriginalPrice *float64
	Rating        float64
	Reviews       int
	ImageURL      *string
	Features      []string
}

func (in PhoneModelInput) validate() error {
	if in.BrandID == uuid.Nil {
		return &gateway.ValidationError{Field: "brand_id", Message: "brand_id is required"}
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
	if in.Rating < 0 || in.Rating > 5 {
		return &gateway.ValidationError{Field: "rating", Message: "rating must be between 0 and 5"}
	}
	if in.Reviews < 0 {
		return &gateway.ValidationError{Field: "reviews", Message: "reviews must not be negative"}
	}
	return nil
}

func (in PhoneModelInput) row() gateway.Row {
	features := in.Features
	if features == nil {
		features = []string{}
	}
	return gateway.Row{
		"brand_id":       in.BrandID,
		"name":           in.Name,
		"price":          in.Price,
		"original_price": optFloat(in.OriginalPrice),
		"rating":         in.Rating,
		"reviews":        int64(in.Reviews),
		"image_url":      optString(in.ImageURL),
		"features":       features,
	}
}

func (s *PhoneModelStore) List(ctx context.Context) ([]models.PhoneModel, error) {
	return s.list(ctx, nil)
}

func (s *PhoneModelStore) ListByBrand(ctx context.Context, brandID uuid.UUID) ([]models.PhoneModel, error) {
	return s.list(ctx, map[string]any{"brand_id": brandID})
}

func (s *PhoneModelStore) list(ctx context.Context, filter map[string]any) ([]models.PhoneModel, error) {
	rows, err := s.gw.Query(ctx, phoneModelsTable, gateway.QueryOptions{
		Filter:     filter,
		OrderBy:    "created_at",
		Descending: true,
	})
	if err != nil {
		return nil, err
	}
	phones := make([]models.PhoneModel, 0, len(rows))
	for _, r := range rows {
		phones = append(phones, phoneModelFromRow(r))
	}
	return phones, nil
}

func (s *PhoneModelStore) Get(ctx context.Context, id uuid.UUID) (models.PhoneModel, error) {
	rows, err := s.gw.Query(ctx, phoneModelsTable, gateway.QueryOptions{Filter: map[string]any{"id": id}})
	if err != nil {
		return models.PhoneModel{}, err
	}
	if len(rows) == 0 {
		return models.PhoneModel{}, notFound("query", phoneModelsTable, id)
	}
	return phoneModelFromRow(rows[0]), nil
}

func (s *PhoneModelStore) Create(ctx context.Context, in PhoneModelInput) (models.PhoneModel, error) {
	if err := in.validate(); err != nil {
		return models.PhoneModel{}, err
	}
	row, err := s.gw.Insert(ctx, phoneModelsTable, in.row())
	if err != nil {
		return models.PhoneModel{}, err
	}
	return phoneModelFromRow(row), nil
}

func (s *PhoneModelStore) Update(ctx context.Context, id uuid.UUID, in PhoneModelInput) (models.PhoneModel, error) {
	if err := in.validate(); err != nil {
		return models.PhoneModel{}, err
	}
	row, err := s.gw.Update(ctx, phoneModelsTable, id, in.row())
	if err != nil {
		return models.PhoneModel{}, err
	}
	return phoneModelFromRow(row), nil
}

func (s *PhoneModelStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.gw.Delete(ctx, phoneModelsTable, id)
}

func phoneModelFromRow(r gateway.Row) models.PhoneModel {
	return models.PhoneModel{
		ID:            rowUUID(r, "id"),
		BrandID:       rowUUID(r, "brand_id"),
		Name:          rowString(r, "name"),
		Price:         rowFloat(r, "price"),
		OriginalPrice: rowFloatPtr(r, "original_price"),
		Rating:        rowFloat(r, "rating"),
		Reviews:       rowInt(r, "reviews"),
		ImageURL:      rowStringPtr(r, "image_url"),
		Features:      rowStrings(r, "features"),
		CreatedAt:     rowTime(r, "created_at"),
		UpdatedAt:     rowTime(r, "updated_at"),
	}
}

// PhoneModelDraft renders a model for editing: numbers as strings,
// features as one comma-joined line.
func PhoneModelDraft(m models.PhoneModel) map[string]string {
	return map[string]string{
		"brand_id":       m.BrandID.String(),
		"name":           m.Name,
		"price":          formatFloat(m.Price),
		"original_price": formatFloatPtr(m.OriginalPrice),
		"rating":         formatFloat(m.Rating),
		"reviews":        strconv.Itoa(m.Reviews),
		"image_url":      derefString(m.ImageURL),
		"features":       strings.Join(m.Features, ", "),
	}
}

// PhoneModelInputFromDraft converts the draft back to a typed input.
// Required numeric fields must be present and parseable.
func PhoneModelInputFromDraft(d map[string]string) (PhoneModelInput, error) {
	var in PhoneModelInput

	for _, f := range []string{"brand_id", "name", "price", "rating", "reviews"} {
		if err := required(f, d[f]); err != nil {
			return in, err
		}
	}

	brandID, err := draftUUID("brand_id", d["brand_id"])
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
	rating, err := draftFloat("rating", d["rating"])
	if err != nil {
		return in, err
	}
	reviews, err := draftInt("reviews", d["reviews"])
	if err != nil {
		return in, err
	}

	in = PhoneModelInput{
		BrandID:       brandID,
		Name:          d["name"],
		Price:         price,
		OriginalPrice: originalPrice,
		Rating:        rating,
		Reviews:       reviews,
		ImageURL:      draftString(d["image_url"]),
		Features:      splitFeatures(d["features"]),
	}
	return in, nil
}
