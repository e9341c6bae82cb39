package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler serves the cart endpoints. The routes are shared by guests and
// authenticated users; the identity middleware resolves the cart owner before
// any handler here runs.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCart returns the owner's cart with line totals and the grand total.
func (h *CartHandler) GetCart(c echo.Context) error {
	owner, ok := middleware.CartOwnerFromContext(c)
	if !ok {
		return response.BadRequest(c, "MISSING_IDENTITY", "Cart owner could not be resolved")
	}

	cart, err := h.uc.GetCart(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(cart), "Cart retrieved successfully")
}

// AddItem adds a product to the cart, folding into an existing line when the
// product is already present.
func (h *CartHandler) AddItem(c echo.Context) error {
	owner, ok := middleware.CartOwnerFromContext(c)
	if !ok {
		return response.BadRequest(c, "MISSING_IDENTITY", "Cart owner could not be resolved")
	}

	var input *usecase.AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	cart, err := h.uc.AddItem(c.Request().Context(), owner, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(cart), "Item added to cart")
}

type updateItemInput struct {
	Quantity int `json:"quantity"`
}

// UpdateItem sets the quantity of an existing cart line. A quantity of zero
// removes the line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	owner, ok := middleware.CartOwnerFromContext(c)
	if !ok {
		return response.BadRequest(c, "MISSING_IDENTITY", "Cart owner could not be resolved")
	}

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var input *updateItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	cart, err := h.uc.UpdateItemQuantity(c.Request().Context(), owner, productID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(cart), "Cart item updated")
}

// RemoveItem deletes the cart line for the given product.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	owner, ok := middleware.CartOwnerFromContext(c)
	if !ok {
		return response.BadRequest(c, "MISSING_IDENTITY", "Cart owner could not be resolved")
	}

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), owner, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from cart")
}

// MergeCart folds the guest cart named by the X-Guest-Id header into the
// authenticated user's cart. Login does this automatically; this endpoint
// covers clients that authenticate through a stored token instead.
func (h *CartHandler) MergeCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	guestID := c.Request().Header.Get(middleware.HeaderXGuestID)

	if err := h.uc.MergeGuestCart(c.Request().Context(), userID, guestID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Guest cart merged")
}

// ClearCart removes every line from the owner's cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	owner, ok := middleware.CartOwnerFromContext(c)
	if !ok {
		return response.BadRequest(c, "MISSING_IDENTITY", "Cart owner could not be resolved")
	}

	if err := h.uc.ClearCart(c.Request().Context(), owner); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
