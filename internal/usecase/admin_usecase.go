package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductInput carries the admin create payload for a product.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
	CategoryID  int64           `json:"category_id"`
	IsActive    *bool           `json:"is_active,omitempty"` // nil creates the product active
}

// UpdateProductInput carries the admin partial-update payload for a product.
// Every field is optional; an omitted field keeps the stored value.
type UpdateProductInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	ImageURL    *string          `json:"image_url"`
	CategoryID  *int64           `json:"category_id"`
	IsActive    *bool            `json:"is_active"`
}

// CategoryInput carries the admin create/update payload for a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UploadImageInput carries an uploaded product image.
type UploadImageInput struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// AdminUsecase defines the back-office catalog management operations.
// All of them require the admin role, enforced by the delivery layer.
type AdminUsecase interface {
	// ListProducts retrieves every product including soft-deleted ones.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct retrieves a product regardless of its active flag.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// CreateProduct adds a product to the catalog.
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// UpdateProduct applies a partial update to an existing product,
	// soft-deleted or not. Fields absent from the input keep their
	// stored values.
	UpdateProduct(ctx context.Context, id int64, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct soft-deletes a product. Historical orders keep
	// referencing it; the storefront stops showing it.
	DeleteProduct(ctx context.Context, id int64) error

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory adds a category.
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)

	// UpdateCategory modifies an existing category.
	UpdateCategory(ctx context.Context, id int64, input *CategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category permanently. It fails while any
	// active product still references the category.
	DeleteCategory(ctx context.Context, id int64) error

	// UploadProductImage validates and stores an image, returning the URL
	// to put into a product's ImageURL field.
	UploadProductImage(ctx context.Context, input *UploadImageInput) (string, error)
}
