package gateway

// ColumnKind tells the Postgres client how to scan and bind a column.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindNumeric
	KindInt
	KindBool
	KindUUID
	KindTimestamp
	KindTextArray
)

// TableSchema lists the columns of one table. ColumnOrder keeps generated
// SQL deterministic.
type TableSchema struct {
	Columns     map[string]ColumnKind
	ColumnOrder []string
}

// serverAssigned columns are set by the database and rejected in insert
// rows and update patches.
var serverAssigned = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// Tables is the schema of every table the gateway will touch. A table or
// column not listed here does not exist as far as callers are concerned.
var Tables = map[string]TableSchema{
	"brands": {
		ColumnOrder: []string{"id", "name", "description", "logo_url", "created_at", "updated_at"},
		Columns: map[string]ColumnKind{
			"id":          KindUUID,
			"name":        KindText,
			"description": KindText,
			"logo_url":    KindText,
			"created_at":  KindTimestamp,
			"updated_at":  KindTimestamp,
		},
	},
	"phone_models": {
		ColumnOrder: []string{"id", "brand_id", "name", "price", "original_price", "rating", "reviews", "image_url", "features", "created_at", "updated_at"},
		Columns: map[string]ColumnKind{
			"id":             KindUUID,
			"brand_id":       KindUUID,
			"name":           KindText,
			"price":          KindNumeric,
			"original_price": KindNumeric,
			"rating":         KindNumeric,
			"reviews":        KindInt,
			"image_url":      KindText,
			"features":       KindTextArray,
			"created_at":     KindTimestamp,
			"updated_at":     KindTimestamp,
		},
	},
	"accessory_categories": {
		ColumnOrder: []string{"id", "name", "description", "icon", "image_url", "created_at", "updated_at"},
		Columns: map[string]ColumnKind{
			"id":          KindUUID,
			"name":        KindText,
			"description": KindText,
			"icon":        KindText,
			"image_url":   KindText,
			"created_at":  KindTimestamp,
			"updated_at":  KindTimestamp,
		},
	},
	"accessory_subcategories": {
		ColumnOrder: []string{"id", "category_id", "name", "description", "image_url", "created_at", "updated_at"},
		Columns: map[string]ColumnKind{
			"id":          KindUUID,
			"category_id": KindUUID,
			"name":        KindText,
			"description": KindText,
			"image_url":   KindText,
			"created_at":  KindTimestamp,
			"updated_at":  KindTimestamp,
		},
	},
	"accessory_products": {
		ColumnOrder: []string{"id", "category_id", "subcategory_id", "name", "price", "original_price", "rating", "reviews", "image_url", "created_at", "updated_at"},
		Columns: map[string]ColumnKind{
			"id":             KindUUID,
			"category_id":    KindUUID,
			"subcategory_id": KindUUID,
			"name":           KindText,
			"price":          KindNumeric,
			"original_price": KindNumeric,
			"rating":         KindNumeric,
			"reviews":        KindInt,
			"image_url":      KindText,
			"created_at":     KindTimestamp,
			"updated_at":     KindTimestamp,
		},
	},
	"gallery_photos": {
		ColumnOrder: []string{"id", "title", "description", "image_url", "category", "created_at", "updated_at"},
		Columns: map[string]ColumnKind{
			"id":          KindUUID,
			"title":       KindText,
			"description": KindText,
			"image_url":   KindText,
			"category":    KindText,
			"created_at":  KindTimestamp,
			"updated_at":  KindTimestamp,
		},
	},
	"admin_users": {
		ColumnOrder: []string{"id", "email", "password_hash", "full_name", "created_at", "updated_at"},
		Columns: map[string]ColumnKind{
			"id":            KindUUID,
			"email":         KindText,
			"password_hash": KindText,
			"full_name":     KindText,
			"created_at":    KindTimestamp,
			"updated_at":    KindTimestamp,
		},
	},
}
