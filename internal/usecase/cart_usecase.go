package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemInput adds quantity of a product to a cart.
type AddItemInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CartView is the aggregated cart returned to clients.
type CartView struct {
	Lines         []*entity.CartLine
	TotalQuantity int
	TotalAmount   decimal.Decimal
}

// CartUsecase defines the shopping cart operations. Every operation takes the
// resolved CartOwner; the delivery layer never passes raw ids here.
type CartUsecase interface {
	// GetCart retrieves the owner's cart with line totals and the grand total.
	GetCart(ctx context.Context, owner entity.CartOwner) (*CartView, error)

	// AddItem adds quantity of a product to the cart, folding into an
	// existing line for the same product. The combined quantity is
	// validated against current stock.
	AddItem(ctx context.Context, owner entity.CartOwner, input *AddItemInput) (*CartView, error)

	// UpdateItemQuantity sets the quantity of an existing line. A quantity
	// of zero or less removes the line.
	UpdateItemQuantity(ctx context.Context, owner entity.CartOwner, productID int64, quantity int) (*CartView, error)

	// RemoveItem deletes the line for the given product.
	RemoveItem(ctx context.Context, owner entity.CartOwner, productID int64) error

	// ClearCart removes every line from the owner's cart.
	ClearCart(ctx context.Context, owner entity.CartOwner) error

	// MergeGuestCart folds a guest cart into the authenticated user's cart
	// at login. Quantities are added for products present in both carts.
	// The guest cart is empty afterwards.
	MergeGuestCart(ctx context.Context, userID uuid.UUID, guestID string) error
}
