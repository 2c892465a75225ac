package store

import (
	"context"

	"mobileshop-server/gateway"
	"mobileshop-server/models"

	"github.com/google/uuid"
)

const galleryTable = "gallery_photos"

type GalleryStore struct {
	gw gateway.Client
}

func NewGalleryStore(gw gateway.Client) *GalleryStore {
	return &GalleryStore{gw: gw}
}

type GalleryPhotoInput struct {
	Title       string
	Description *string
	ImageURL    string
	Category    *string
}

func (in GalleryPhotoInput) validate() error {
	if err := required("title", in.Title); err != nil {
		return err
	}
	return required("image_url", in.ImageURL)
}

func (in GalleryPhotoInput) row() gateway.Row {
	return gateway.Row{
		"title":       in.Title,
		"description": optString(in.Description),
		"image_url":   in.ImageURL,
		"category":    optString(in.Category),
	}
}

func (s *GalleryStore) List(ctx context.Context) ([]models.GalleryPhoto, error) {
	return s.list(ctx, nil)
}

func (s *GalleryStore) ListByCategory(ctx context.Context, category string) ([]models.GalleryPhoto, error) {
	return s.list(ctx, map[string]any{"category": category})
}

func (s *GalleryStore) list(ctx context.Context, filter map[string]any) ([]models.GalleryPhoto, error) {
	rows, err := s.gw.Query(ctx, galleryTable, gateway.QueryOptions{
		Filter:     filter,
		OrderBy:    "created_at",
		Descending: true,
	})
	if err != nil {
		return nil, err
	}
	photos := make([]models.GalleryPhoto, 0, len(rows))
	for _, r := range rows {
		photos = append(photos, galleryPhotoFromRow(r))
	}
	return photos, nil
}

func (s *GalleryStore) Get(ctx context.Context, id uuid.UUID) (models.GalleryPhoto, error) {
	rows, err := s.gw.Query(ctx, galleryTable, gateway.QueryOptions{Filter: map[string]any{"id": id}})
	if err != nil {
		return models.GalleryPhoto{}, err
	}
	if len(rows) == 0 {
		return models.GalleryPhoto{}, notFound("query", galleryTable, id)
	}
	return galleryPhotoFromRow(rows[0]), nil
}

func (s *GalleryStore) Create(ctx context.Context, in GalleryPhotoInput) (models.GalleryPhoto, error) {
	if err := in.validate(); err != nil {
		return models.GalleryPhoto{}, err
	}
	row, err := s.gw.Insert(ctx, galleryTable, in.row())
	if err != nil {
		return models.GalleryPhoto{}, err
	}
	return galleryPhotoFromRow(row), nil
}

func (s *GalleryStore) Update(ctx context.Context, id uuid.UUID, in GalleryPhotoInput) (models.GalleryPhoto, error) {
	if err := in.validate(); err != nil {
		return models.GalleryPhoto{}, err
	}
	row, err := s.gw.Update(ctx, galleryTable, id, in.row())
	if err != nil {
		return models.GalleryPhoto{}, err
	}
	return galleryPhotoFromRow(row), nil
}

func (s *GalleryStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.gw.Delete(ctx, galleryTable, id)
}

func galleryPhotoFromRow(r gateway.Row) models.GalleryPhoto {
	return models.GalleryPhoto{
		ID:          rowUUID(r, "id"),
		Title:       rowString(r, "title"),
		Description: rowStringPtr(r, "description"),
		ImageURL:    rowString(r, "image_url"),
		Category:    rowStringPtr(r, "category"),
		CreatedAt:   rowTime(r, "created_at"),
		UpdatedAt:   rowTime(r, "updated_at"),
	}
}

func GalleryPhotoDraft(p models.GalleryPhoto) map[string]string {
	return map[string]string{
		"title":       p.Title,
		"description": derefString(p.Description),
		"image_url":   p.ImageURL,
		"category":    derefString(p.Category),
	}
}

func GalleryPhotoInputFromDraft(d map[string]string) (GalleryPhotoInput, error) {
	return GalleryPhotoInput{
		Title:       d["title"],
		Description: draftString(d["description"]),
		ImageURL:    d["image_url"],
		Category:    draftString(d["category"]),
	}, nil
}
