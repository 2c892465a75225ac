package models

import (
	"time"

	"github.com/google/uuid"
)

type Subcategory struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CategoryID  uuid.UUID `json:"category_id" db:"category_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (Subcategory) TableName() string {
	return "accessory_subcategories"
}

func (Subcategory) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS accessory_subcategories (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		category_id UUID NOT NULL REFERENCES accessory_categories(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT,
		image_url TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}
