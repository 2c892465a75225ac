package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	CategoryID    uuid.UUID  `json:"category_id" db:"category_id"`
	SubcategoryID *uuid.UUID `json:"subcategory_id" db:"subcategory_id"`
	Name          string     `json:"name" db:"name"`
	Price         float64    `json:"price" db:"price"`
	OriginalPrice *float64   `json:"original_price" db:"original_price"`
	Rating        *float64   `json:"rating" db:"rating"`
	Reviews       *int       `json:"reviews" db:"reviews"`
	ImageURL      *string    `json:"image_url" db:"image_url"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

func (Product) TableName() string {
	return "accessory_products"
}

func (Product) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS accessory_products (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		category_id UUID NOT NULL REFERENCES accessory_categories(id) ON DELETE CASCADE,
		subcategory_id UUID REFERENCES accessory_subcategories(id) ON DELETE SET NULL,
		name TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL,
		original_price NUMERIC(12,2),
		rating NUMERIC(3,1),
		reviews INTEGER,
		image_url TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}

// DiscountPercent returns the rounded discount percentage, or 0 when the
// product has no original price above its current price.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	return int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100))
}
