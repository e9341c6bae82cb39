package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:      svc,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func TestCatalogService_ListProducts_PassesFilter(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{testProduct(1, 19.99, 10)}

	fx.productRepo.EXPECT().
		ListActive(ctx, repository.ProductFilter{Search: "lamp", CategoryID: 3}).
		Return(products, nil)

	got, err := fx.service.ListProducts(ctx, &usecase.CatalogQuery{Search: "lamp", CategoryID: 3})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCatalogService_ListProducts_NilQuery(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		ListActive(ctx, repository.ProductFilter{}).
		Return([]*entity.Product{}, nil)

	got, err := fx.service.ListProducts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogService_GetProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := testProduct(1, 19.99, 10)

	fx.productRepo.EXPECT().FindActiveByID(ctx, int64(1)).Return(product, nil)

	got, err := fx.service.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestCatalogService_GetProduct_SoftDeletedIsInvisible(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	// Soft-deleted products are filtered by the active-only lookup, so the
	// store reports them as missing.
	fx.productRepo.EXPECT().
		FindActiveByID(ctx, int64(1)).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, 1)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_ListCategories_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categories := []*entity.Category{
		{ID: 1, Name: "Furniture"},
		{ID: 2, Name: "Lighting"},
	}

	fx.categoryRepo.EXPECT().List(ctx).Return(categories, nil)

	got, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogService_ListCategories_Error(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().List(ctx).Return(nil, errors.New("db error"))

	_, err := fx.service.ListCategories(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list categories")
}
