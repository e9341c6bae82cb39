package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item offered by the store. Prices are fixed-point
// currency values with two decimal places.
type Product struct {
	ID          int64           // Surrogate key assigned by the store.
	Name        string          // Display name shown in catalog listings.
	Description string          // Free-form marketing description.
	Price       decimal.Decimal // Current unit price; order lines snapshot it at checkout.
	Stock       int             // Units available; never negative.
	ImageURL    string          // Relative URL of the product image.
	CategoryID  int64           // Foreign key to the owning Category.
	Category    *Category       // Populated on reads that preload the category.
	IsActive    bool            // False once soft-deleted; hidden from catalog listings.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasStock reports whether the product can cover the requested quantity.
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}

// Category groups products. Categories are deleted physically, but only
// when no active product references them.
type Category struct {
	ID          int64
	Name        string // Unique across categories.
	Description string
	CreatedAt   time.Time
}
