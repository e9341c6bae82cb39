package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order does not exist or belongs to a
// different user. The two cases are deliberately indistinguishable.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// Create persists a new order together with its lines.
	Create(ctx context.Context, order *entity.Order) error

	// FindByUser retrieves all orders of a user, newest first, with lines
	// and their (possibly soft-deleted) products preloaded.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindByIDAndUser retrieves a single order scoped to its owner.
	FindByIDAndUser(ctx context.Context, orderID int64, userID uuid.UUID) (*entity.Order, error)

	// UpdateStatus sets the status of an existing order.
	UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error
}
