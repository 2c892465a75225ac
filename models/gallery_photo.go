package models

import (
	"time"

	"github.com/google/uuid"
)

type GalleryPhoto struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	Category    *string   `json:"category" db:"category"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (GalleryPhoto) TableName() string {
	return "gallery_photos"
}

func (GalleryPhoto) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS gallery_photos (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title TEXT NOT NULL,
		description TEXT,
		image_url TEXT NOT NULL,
		category TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}
