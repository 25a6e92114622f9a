package model

import (
	"database/sql"
	"time"
)

type Product struct {
	BaseModel
	Name      string    `db:"name" json:"name"`
	Price     int64     `db:"price" json:"price"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// ProductCategory is one row of the product_categories join table.
type ProductCategory struct {
	ProductID  int64 `db:"product_id"`
	CategoryID int64 `db:"category_id"`
}

// ProductCategoryRow is one flat row of products LEFT JOIN categories.
// Category columns are NULL for a product without categories.
type ProductCategoryRow struct {
	ProductID    int64          `db:"product_id"`
	ProductName  string         `db:"product_name"`
	Price        int64          `db:"price"`
	CategoryID   sql.NullInt64  `db:"category_id"`
	CategoryName sql.NullString `db:"category_name"`
}

// ProductWithCategories is the nested shape served by the API.
type ProductWithCategories struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Price      int64         `json:"price"`
	Categories []CategoryRef `json:"categories"`
}
