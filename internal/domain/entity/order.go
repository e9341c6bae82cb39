package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is an immutable record of a checkout. The total is computed once
// at creation time and never recomputed, regardless of later product
// price changes. Orders always belong to an authenticated user.
type Order struct {
	ID              int64
	UserID          uuid.UUID
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	ShippingAddress string
	Lines           []*OrderLine
	CreatedAt       time.Time
}

// OrderLine captures one cart line at order time. Quantity and UnitPrice
// are snapshots, decoupled from any later product change.
type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Product   *Product // Historical lookup; may reference a soft-deleted product.
	Quantity  int
	UnitPrice decimal.Decimal
}

// LineTotal returns the snapshot quantity x snapshot unit price.
func (l *OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
