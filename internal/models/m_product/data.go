package m_product

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
// Prices are NUMERIC columns so they round-trip exactly.
type Data struct {
	ProductID      string              `spanner:"product_id"`
	Name           string              `spanner:"name"`
	Category       string              `spanner:"category"`
	Subcategory    spanner.NullString  `spanner:"subcategory"`
	Price          big.Rat             `spanner:"price"`
	DiscountPrice  spanner.NullNumeric `spanner:"discount_price"`
	Description    string              `spanner:"description"`
	Features       []string            `spanner:"features"`
	Specifications spanner.NullJSON    `spanner:"specifications"`
	Images         []string            `spanner:"images"`
	Stock          int64               `spanner:"stock"`
	Rating         float64             `spanner:"rating"`
	Reviews        spanner.NullJSON    `spanner:"reviews"`
	IsFeatured     bool                `spanner:"is_featured"`
	IsNewArrival   bool                `spanner:"is_new_arrival"`
	CreatedAt      time.Time           `spanner:"created_at"`
	UpdatedAt      time.Time           `spanner:"updated_at"`
}
