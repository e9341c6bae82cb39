// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a conditional stock decrement
	// finds fewer units than requested.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductFilter narrows catalog listings. Zero values mean "no filter".
type ProductFilter struct {
	Search     string // Case-insensitive match on name, description or category name.
	CategoryID int64
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by id regardless of its active flag.
	// Historical lookups (order lines, admin edit) must see soft-deleted rows.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindActiveByID retrieves a product by id, excluding soft-deleted rows.
	FindActiveByID(ctx context.Context, id int64) (*entity.Product, error)

	// ListActive retrieves active products matching the filter, ordered by name.
	ListActive(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// ListAll retrieves every product including soft-deleted ones, newest first.
	ListAll(ctx context.Context) ([]*entity.Product, error)

	// Update persists changes to an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// SoftDelete clears the active flag without removing the row.
	// Idempotent: deleting an already-inactive product succeeds;
	// ErrProductNotFound is returned only when the id does not exist.
	SoftDelete(ctx context.Context, id int64) error

	// DecrementStock atomically subtracts quantity from the product's stock.
	// The update only applies when enough stock remains; otherwise
	// ErrInsufficientStock is returned and the row is untouched.
	DecrementStock(ctx context.Context, id int64, quantity int) error

	// RestoreStock atomically adds quantity back to the product's stock.
	RestoreStock(ctx context.Context, id int64, quantity int) error

	// CountActiveByCategory counts active products referencing the category.
	CountActiveByCategory(ctx context.Context, categoryID int64) (int64, error)
}
