package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service        usecase.OrderUsecase
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	orderRepo      *mockRepo.MockOrderRepository
	eventPublisher *mockService.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	eventPublisher := mockService.NewMockEventPublisher(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager:      txManager,
		OrderRepo:      orderRepo,
		EventPublisher: eventPublisher,
		Logger:         newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:        svc,
		txManager:      txManager,
		factory:        factory,
		orderRepo:      orderRepo,
		eventPublisher: eventPublisher,
	}
}

// onExecute wires the transaction manager so the transactional callback runs
// against the fixture factory and its error propagates like a rollback would.
func (fx orderServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	setup(fx.factory)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	ownerKey := entity.AuthenticatedOwner(userID).Key()

	lines := []*entity.CartLine{
		{ID: 1, OwnerKey: ownerKey, ProductID: 1, Quantity: 2, Product: testProduct(1, 19.99, 10)},
		{ID: 2, OwnerKey: ownerKey, ProductID: 2, Quantity: 1, Product: testProduct(2, 5.50, 3)},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().CartRepo().Return(cartRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		cartRepo.EXPECT().FindLines(ctx, ownerKey).Return(lines, nil)
		orderRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(_ context.Context, order *entity.Order) {
				order.ID = 42
				require.Len(t, order.Lines, 2)
				assert.Equal(t, entity.OrderStatusPending, order.Status)
				// Unit prices are snapshots of the current product price.
				assert.True(t, order.Lines[0].UnitPrice.Equal(decimal.NewFromFloat(19.99)))
				assert.True(t, order.Lines[1].UnitPrice.Equal(decimal.NewFromFloat(5.50)))
				assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(45.48)))
			}).
			Return(nil)
		productRepo.EXPECT().DecrementStock(ctx, int64(1), 2).Return(nil)
		productRepo.EXPECT().DecrementStock(ctx, int64(2), 1).Return(nil)
		cartRepo.EXPECT().DeleteLines(ctx, ownerKey).Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			assert.Equal(t, service.OrderEventCreated, event.EventType)
			assert.Equal(t, int64(42), event.OrderID)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, 2, event.LineCount)
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, userID, &usecase.CreateOrderInput{ShippingAddress: "1 Main St"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, userID, order.UserID)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(45.48)))
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	ownerKey := entity.AuthenticatedOwner(userID).Key()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().CartRepo().Return(cartRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		cartRepo.EXPECT().FindLines(ctx, ownerKey).Return([]*entity.CartLine{}, nil)
	})

	_, err := fx.service.CreateOrder(ctx, userID, &usecase.CreateOrderInput{ShippingAddress: "1 Main St"})

	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestOrderService_CreateOrder_MissingShippingAddress(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	_, err := fx.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{ShippingAddress: "   "})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	ownerKey := entity.AuthenticatedOwner(userID).Key()

	lines := []*entity.CartLine{
		{ID: 1, OwnerKey: ownerKey, ProductID: 1, Quantity: 5, Product: testProduct(1, 19.99, 2)},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().CartRepo().Return(cartRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		cartRepo.EXPECT().FindLines(ctx, ownerKey).Return(lines, nil)
	})

	_, err := fx.service.CreateOrder(ctx, userID, &usecase.CreateOrderInput{ShippingAddress: "1 Main St"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_CreateOrder_ConcurrentStockRace(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	ownerKey := entity.AuthenticatedOwner(userID).Key()

	// The in-memory read still sees enough stock; the conditional decrement
	// is what loses the race.
	lines := []*entity.CartLine{
		{ID: 1, OwnerKey: ownerKey, ProductID: 1, Quantity: 2, Product: testProduct(1, 19.99, 10)},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().CartRepo().Return(cartRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		cartRepo.EXPECT().FindLines(ctx, ownerKey).Return(lines, nil)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		productRepo.EXPECT().DecrementStock(ctx, int64(1), 2).Return(repository.ErrInsufficientStock)
	})

	_, err := fx.service.CreateOrder(ctx, userID, &usecase.CreateOrderInput{ShippingAddress: "1 Main St"})

	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestOrderService_CreateOrder_InactiveProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	ownerKey := entity.AuthenticatedOwner(userID).Key()

	discontinued := testProduct(1, 19.99, 10)
	discontinued.IsActive = false
	lines := []*entity.CartLine{
		{ID: 1, OwnerKey: ownerKey, ProductID: 1, Quantity: 1, Product: discontinued},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().CartRepo().Return(cartRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		cartRepo.EXPECT().FindLines(ctx, ownerKey).Return(lines, nil)
	})

	_, err := fx.service.CreateOrder(ctx, userID, &usecase.CreateOrderInput{ShippingAddress: "1 Main St"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProductNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_CreateOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	ownerKey := entity.AuthenticatedOwner(userID).Key()

	lines := []*entity.CartLine{
		{ID: 1, OwnerKey: ownerKey, ProductID: 1, Quantity: 1, Product: testProduct(1, 19.99, 10)},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().CartRepo().Return(cartRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		cartRepo.EXPECT().FindLines(ctx, ownerKey).Return(lines, nil)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		productRepo.EXPECT().DecrementStock(ctx, int64(1), 1).Return(nil)
		cartRepo.EXPECT().DeleteLines(ctx, ownerKey).Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker unavailable"))

	order, err := fx.service.CreateOrder(ctx, userID, &usecase.CreateOrderInput{ShippingAddress: "1 Main St"})

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_ListOrders_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{
		{ID: 2, UserID: userID, Status: entity.OrderStatusPending},
		{ID: 1, UserID: userID, Status: entity.OrderStatusDelivered},
	}

	fx.orderRepo.EXPECT().FindByUser(ctx, userID).Return(orders, nil)

	got, err := fx.service.ListOrders(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByIDAndUser(ctx, int64(9), userID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, userID, 9)

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_CancelOrder_RestoresStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{
		ID:     42,
		UserID: userID,
		Status: entity.OrderStatusPending,
		Lines: []*entity.OrderLine{
			{ID: 1, OrderID: 42, ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromFloat(19.99)},
			{ID: 2, OrderID: 42, ProductID: 2, Quantity: 1, UnitPrice: decimal.NewFromFloat(5.50)},
		},
		TotalAmount: decimal.NewFromFloat(45.48),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		orderRepo.EXPECT().FindByIDAndUser(ctx, int64(42), userID).Return(order, nil)
		productRepo.EXPECT().RestoreStock(ctx, int64(1), 2).Return(nil)
		productRepo.EXPECT().RestoreStock(ctx, int64(2), 1).Return(nil)
		orderRepo.EXPECT().UpdateStatus(ctx, int64(42), entity.OrderStatusCancelled).Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			assert.Equal(t, service.OrderEventCancelled, event.EventType)
			assert.Equal(t, int64(42), event.OrderID)
		}).
		Return(nil)

	cancelled, err := fx.service.CancelOrder(ctx, userID, 42)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
}

func TestOrderService_CancelOrder_NotCancellable(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{
		ID:     42,
		UserID: userID,
		Status: entity.OrderStatusShipped,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		orderRepo.EXPECT().FindByIDAndUser(ctx, int64(42), userID).Return(order, nil)
	})

	_, err := fx.service.CancelOrder(ctx, userID, 42)

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotCancellable))
}

func TestOrderService_CancelOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		orderRepo.EXPECT().FindByIDAndUser(ctx, int64(9), userID).Return(nil, repository.ErrOrderNotFound)
	})

	_, err := fx.service.CancelOrder(ctx, userID, 9)

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
