package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart retrieves the owner's cart with line totals and the grand total.
func (srv *cartService) GetCart(ctx context.Context, owner entity.CartOwner) (*usecase.CartView, error) {
	lines, err := srv.cartRepo.FindLines(ctx, owner.Key())
	if err != nil {
		srv.log(ctx).Error("Failed to load cart", slog.String("ownerKey", owner.Key()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return buildCartView(lines), nil
}

// AddItem adds quantity of a product to the cart. The read-check-write
// sequence runs in one transaction so two concurrent adds cannot both pass
// the stock check against a stale line.
func (srv *cartService) AddItem(ctx context.Context, owner entity.CartOwner, input *usecase.AddItemInput) (*usecase.CartView, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		cartRepo := repoFactory.CartRepo()

		product, err := productRepo.FindActiveByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		line, err := cartRepo.FindLine(ctx, owner.Key(), input.ProductID)
		switch {
		case errors.Is(err, repository.ErrCartLineNotFound):
			if !product.HasStock(input.Quantity) {
				return domainerrors.ErrInsufficientStock
			}

			newLine := &entity.CartLine{
				OwnerKey:  owner.Key(),
				ProductID: input.ProductID,
				Quantity:  input.Quantity,
			}
			if err := cartRepo.CreateLine(ctx, newLine); err != nil {
				return errors.Wrap(err, "failed to create cart line")
			}

			return nil
		case err != nil:
			return errors.Wrap(err, "failed to find cart line")
		default:
			// The stock check covers the combined quantity, not just the delta.
			combined := line.Quantity + input.Quantity
			if !product.HasStock(combined) {
				return domainerrors.ErrInsufficientStock
			}

			return errors.Wrap(cartRepo.UpdateQuantity(ctx, line.ID, combined), "failed to update cart line")
		}
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Cart item added",
		slog.String("ownerKey", owner.Key()),
		slog.Int64("productID", input.ProductID),
		slog.Int("quantity", input.Quantity),
	)

	return srv.GetCart(ctx, owner)
}

// UpdateItemQuantity sets the quantity of an existing line. A quantity of
// zero or less removes the line.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, owner entity.CartOwner, productID int64, quantity int) (*usecase.CartView, error) {
	if quantity <= 0 {
		if err := srv.RemoveItem(ctx, owner, productID); err != nil {
			return nil, err
		}

		return srv.GetCart(ctx, owner)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		cartRepo := repoFactory.CartRepo()

		line, err := cartRepo.FindLine(ctx, owner.Key(), productID)
		if err != nil {
			if errors.Is(err, repository.ErrCartLineNotFound) {
				return domainerrors.ErrCartLineNotFound
			}

			return errors.Wrap(err, "failed to find cart line")
		}

		product, err := productRepo.FindActiveByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		if !product.HasStock(quantity) {
			return domainerrors.ErrInsufficientStock
		}

		return errors.Wrap(cartRepo.UpdateQuantity(ctx, line.ID, quantity), "failed to update cart line")
	})
	if err != nil {
		return nil, err
	}

	return srv.GetCart(ctx, owner)
}

// RemoveItem deletes the line for the given product.
func (srv *cartService) RemoveItem(ctx context.Context, owner entity.CartOwner, productID int64) error {
	if err := srv.cartRepo.DeleteLine(ctx, owner.Key(), productID); err != nil {
		if errors.Is(err, repository.ErrCartLineNotFound) {
			return domainerrors.ErrCartLineNotFound
		}

		return errors.Wrap(err, "failed to remove cart line")
	}

	return nil
}

// ClearCart removes every line from the owner's cart.
func (srv *cartService) ClearCart(ctx context.Context, owner entity.CartOwner) error {
	if err := srv.cartRepo.DeleteLines(ctx, owner.Key()); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// MergeGuestCart folds a guest cart into the authenticated user's cart.
// Stock is deliberately not re-validated here; checkout is the gate that
// decides whether the merged quantities can actually be bought.
func (srv *cartService) MergeGuestCart(ctx context.Context, userID uuid.UUID, guestID string) error {
	if guestID == "" {
		return nil
	}

	guestKey := entity.GuestOwner(guestID).Key()
	userKey := entity.AuthenticatedOwner(userID).Key()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		guestLines, err := cartRepo.FindLines(ctx, guestKey)
		if err != nil {
			return errors.Wrap(err, "failed to load guest cart")
		}

		for _, guestLine := range guestLines {
			userLine, err := cartRepo.FindLine(ctx, userKey, guestLine.ProductID)
			switch {
			case errors.Is(err, repository.ErrCartLineNotFound):
				if err := cartRepo.ReassignOwner(ctx, guestLine.ID, userKey); err != nil {
					return errors.Wrap(err, "failed to reassign guest cart line")
				}
			case err != nil:
				return errors.Wrap(err, "failed to find user cart line")
			default:
				combined := userLine.Quantity + guestLine.Quantity
				if err := cartRepo.UpdateQuantity(ctx, userLine.ID, combined); err != nil {
					return errors.Wrap(err, "failed to merge cart line quantity")
				}
				if err := cartRepo.DeleteLine(ctx, guestKey, guestLine.ProductID); err != nil {
					return errors.Wrap(err, "failed to delete merged guest line")
				}
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to merge guest cart",
			slog.String("guestID", guestID),
			slog.Any("userID", userID),
			slog.Any("error", err),
		)

		return err
	}

	srv.log(ctx).Info("Guest cart merged",
		slog.String("guestID", guestID),
		slog.Any("userID", userID),
	)

	return nil
}

// buildCartView aggregates cart lines into the client-facing view.
func buildCartView(lines []*entity.CartLine) *usecase.CartView {
	view := &usecase.CartView{
		Lines:       lines,
		TotalAmount: decimal.Zero,
	}

	for _, line := range lines {
		view.TotalQuantity += line.Quantity
		view.TotalAmount = view.TotalAmount.Add(line.LineTotal())
	}

	return view
}
