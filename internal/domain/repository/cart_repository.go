package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartLineNotFound is returned when no line exists for the
	// (owner key, product) pair.
	ErrCartLineNotFound = errors.New("cart line not found")
	// ErrDuplicateCartLine is returned when inserting a second line for the
	// same (owner key, product) pair.
	ErrDuplicateCartLine = errors.New("cart line already exists")
)

// CartRepository defines the interface for cart-related database operations.
type CartRepository interface {
	// FindLines retrieves all cart lines for an owner with their products
	// preloaded, oldest first.
	FindLines(ctx context.Context, ownerKey string) ([]*entity.CartLine, error)

	// FindLine retrieves the single line for (ownerKey, productID).
	FindLine(ctx context.Context, ownerKey string, productID int64) (*entity.CartLine, error)

	// CreateLine persists a new cart line.
	CreateLine(ctx context.Context, line *entity.CartLine) error

	// UpdateQuantity sets the quantity of an existing line.
	UpdateQuantity(ctx context.Context, lineID int64, quantity int) error

	// ReassignOwner moves a line to a different owner key.
	ReassignOwner(ctx context.Context, lineID int64, ownerKey string) error

	// DeleteLine removes the line for (ownerKey, productID).
	DeleteLine(ctx context.Context, ownerKey string, productID int64) error

	// DeleteLines removes every line belonging to an owner.
	DeleteLines(ctx context.Context, ownerKey string) error
}
