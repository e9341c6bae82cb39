// Package usecase defines the application's business operations as interfaces
// with their input and output shapes. Implementations live in impl.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogQuery narrows the public product listing.
type CatalogQuery struct {
	Search     string
	CategoryID int64
}

// CatalogUsecase defines the public, read-only storefront catalog operations.
// Soft-deleted products are invisible here.
type CatalogUsecase interface {
	// ListProducts retrieves active products matching the query, ordered by name.
	ListProducts(ctx context.Context, query *CatalogQuery) ([]*entity.Product, error)

	// GetProduct retrieves a single active product.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
