package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput carries the checkout request.
type CreateOrderInput struct {
	ShippingAddress string `json:"shipping_address"`
}

// OrderUsecase defines the checkout and order history operations.
// Orders always belong to authenticated users.
type OrderUsecase interface {
	// CreateOrder turns the user's cart into a pending order: it validates
	// stock, snapshots prices, decrements inventory and clears the cart in
	// one transaction.
	CreateOrder(ctx context.Context, userID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// ListOrders retrieves the user's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder retrieves a single order owned by the user.
	GetOrder(ctx context.Context, userID uuid.UUID, orderID int64) (*entity.Order, error)

	// CancelOrder cancels a pending order and restores its stock.
	CancelOrder(ctx context.Context, userID uuid.UUID, orderID int64) (*entity.Order, error)
}
