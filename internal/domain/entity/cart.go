package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one product entry in a cart. At most one line exists per
// (owner key, product) pair; adding the same product again increments
// the quantity of the existing line.
type CartLine struct {
	ID        int64
	OwnerKey  string   // Opaque owner key produced by CartOwner.Key.
	ProductID int64
	Product   *Product // Populated on reads that preload the product.
	Quantity  int      // Always >= 1; setting it to 0 deletes the line.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LineTotal returns quantity x current product price. Zero when the
// product has not been preloaded.
func (l *CartLine) LineTotal() decimal.Decimal {
	if l.Product == nil {
		return decimal.Zero
	}

	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
