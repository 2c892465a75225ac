package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type PhoneModel struct {
	ID            uuid.UUID `json:"id" db:"id"`
	BrandID       uuid.UUID `json:"brand_id" db:"brand_id"`
	Name          string    `json:"name" db:"name"`
	Price         float64   `json:"price" db:"price"`
	OriginalPrice *float64  `json:"original_price" db:"original_price"`
	Rating        float64   `json:"rating" db:"rating"`
	Reviews       int       `json:"reviews" db:"reviews"`
	ImageURL      *string   `json:"image_url" db:"image_url"`
	Features      []string  `json:"features" db:"features"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

func (PhoneModel) TableName() string {
	return "phone_models"
}

func (PhoneModel) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS phone_models (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		brand_id UUID NOT NULL REFERENCES brands(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL,
		original_price NUMERIC(12,2),
		rating NUMERIC(3,1) NOT NULL DEFAULT 0,
		reviews INTEGER NOT NULL DEFAULT 0,
		image_url TEXT,
		features TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}

// DiscountPercent returns the rounded discount percentage, or 0 when the
// model has no original price above its current price.
func (m PhoneModel) DiscountPercent() int {
	if m.OriginalPrice == nil || *m.OriginalPrice <= m.Price {
		return 0
	}
	return int(math.Round((*m.OriginalPrice - m.Price) / *m.OriginalPrice * 100))
}
