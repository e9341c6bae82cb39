package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder turns the user's cart into a pending order. Everything runs in
// one transaction: validate the cart, snapshot prices, decrement stock and
// clear the cart. The conditional stock decrement is the final arbiter for
// concurrent checkouts; losing the race rolls the whole order back.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	shippingAddress := strings.TrimSpace(input.ShippingAddress)
	if shippingAddress == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shipping address is required")
	}

	ownerKey := entity.AuthenticatedOwner(userID).Key()

	var createdOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		lines, err := cartRepo.FindLines(ctx, ownerKey)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		if len(lines) == 0 {
			return domainerrors.ErrEmptyCart
		}

		order := &entity.Order{
			UserID:          userID,
			Status:          entity.OrderStatusPending,
			ShippingAddress: shippingAddress,
			TotalAmount:     decimal.Zero,
			Lines:           make([]*entity.OrderLine, 0, len(lines)),
		}

		for _, line := range lines {
			product := line.Product
			if product == nil || !product.IsActive {
				return domainerrors.ErrProductNotFound.WithDetails("a product in the cart is no longer available")
			}
			if !product.HasStock(line.Quantity) {
				return domainerrors.ErrInsufficientStock.WithDetails(product.Name)
			}

			order.Lines = append(order.Lines, &entity.OrderLine{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price, // Price snapshot at checkout time.
			})
			order.TotalAmount = order.TotalAmount.Add(line.LineTotal())
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, line := range order.Lines {
			if err := productRepo.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					// A concurrent checkout took the stock between our
					// read and this decrement.
					return domainerrors.ErrInsufficientStock
				}

				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		if err := cartRepo.DeleteLines(ctx, ownerKey); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		createdOrder = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.Int64("orderID", createdOrder.ID),
		slog.Any("userID", userID),
		slog.String("totalAmount", createdOrder.TotalAmount.String()),
	)

	srv.publishOrderEvent(ctx, service.OrderEventCreated, createdOrder)

	return createdOrder, nil
}

// ListOrders retrieves the user's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder retrieves a single order owned by the user.
func (srv *orderService) GetOrder(ctx context.Context, userID uuid.UUID, orderID int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDAndUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// CancelOrder cancels a pending order and restores its stock. Only the
// order's owner can cancel, and only while the order is still pending.
func (srv *orderService) CancelOrder(ctx context.Context, userID uuid.UUID, orderID int64) (*entity.Order, error) {
	var cancelledOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		productRepo := repoFactory.ProductRepo()

		order, err := orderRepo.FindByIDAndUser(ctx, orderID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		if !order.Status.CanCancel() {
			return domainerrors.ErrOrderNotCancellable
		}

		for _, line := range order.Lines {
			if err := productRepo.RestoreStock(ctx, line.ProductID, line.Quantity); err != nil {
				return errors.Wrap(err, "failed to restore stock")
			}
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatusCancelled); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		order.Status = entity.OrderStatusCancelled
		cancelledOrder = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order cancelled",
		slog.Int64("orderID", orderID),
		slog.Any("userID", userID),
	)

	srv.publishOrderEvent(ctx, service.OrderEventCancelled, cancelledOrder)

	return cancelledOrder, nil
}

// publishOrderEvent emits an order lifecycle event after the transaction has
// committed. Publishing failures are logged, never surfaced: the order is
// already persisted and must not appear to have failed.
func (srv *orderService) publishOrderEvent(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventType:   eventType,
		OrderID:     order.ID,
		UserID:      order.UserID.String(),
		TotalAmount: order.TotalAmount.String(),
		LineCount:   len(order.Lines),
	}

	if err := srv.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("eventType", eventType),
			slog.Int64("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}
