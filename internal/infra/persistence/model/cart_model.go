package model

import "time"

// CartLineModel mirrors the 'cart_lines' table. The composite unique
// index guarantees at most one line per (owner_key, product_id) pair,
// so concurrent add requests collapse into a constraint violation
// instead of duplicate rows.
type CartLineModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OwnerKey  string `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_owner_product,priority:1"`
	ProductID int64  `gorm:"not null;uniqueIndex:idx_cart_owner_product,priority:2"`
	Quantity  int    `gorm:"not null;check:quantity > 0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "cart_lines"
}
