package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	imageStore   *mockService.MockImageStore
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	imageStore := mockService.NewMockImageStore(t)

	svc := NewAdminService(AdminServiceParams{
		TxManager:    txManager,
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		ImageStore:   imageStore,
		Logger:       newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:      svc,
		txManager:    txManager,
		factory:      factory,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		imageStore:   imageStore,
	}
}

// onExecute wires the transaction manager so the transactional callback runs
// against the fixture factory and its error propagates like a rollback would.
func (fx adminServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	setup(fx.factory)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func validProductInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        "Desk Lamp",
		Description: "Adjustable brass desk lamp",
		Price:       decimal.NewFromFloat(49.90),
		Stock:       12,
		CategoryID:  3,
	}
}

func TestAdminService_CreateProduct_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := validProductInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().CategoryRepo().Return(categoryRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		categoryRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Category{ID: 3, Name: "Lighting"}, nil)
		productRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Product")).
			Run(func(_ context.Context, product *entity.Product) {
				product.ID = 11
				assert.Equal(t, "Desk Lamp", product.Name)
				assert.True(t, product.IsActive)
			}).
			Return(nil)
	})

	product, err := fx.service.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(11), product.ID)
	assert.True(t, product.IsActive)
}

func TestAdminService_CreateProduct_CategoryNotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().CategoryRepo().Return(categoryRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		categoryRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, repository.ErrCategoryNotFound)
	})

	_, err := fx.service.CreateProduct(ctx, validProductInput())

	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestAdminService_CreateProduct_InvalidInput(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(input *usecase.ProductInput)
	}{
		{"empty name", func(input *usecase.ProductInput) { input.Name = "  " }},
		{"negative price", func(input *usecase.ProductInput) { input.Price = decimal.NewFromFloat(-1) }},
		{"negative stock", func(input *usecase.ProductInput) { input.Stock = -1 }},
		{"missing category", func(input *usecase.ProductInput) { input.CategoryID = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validProductInput()
			tc.mutate(input)

			_, err := fx.service.CreateProduct(ctx, input)

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestAdminService_UpdateProduct_OmittedFieldsRetained(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	existing := testProduct(7, 49.90, 5)
	existing.Description = "A fine widget"
	existing.ImageURL = "/uploads/w.png"
	existing.CategoryID = 3

	// Only name and price in the payload; everything else stays as stored.
	input := &usecase.UpdateProductInput{
		Name:  ptr("Widget"),
		Price: ptr(decimal.NewFromFloat(9.99)),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().CategoryRepo().Return(categoryRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().FindByID(ctx, int64(7)).Return(existing, nil)
		productRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Product")).
			Run(func(_ context.Context, product *entity.Product) {
				assert.Equal(t, "Widget", product.Name)
				assert.True(t, decimal.NewFromFloat(9.99).Equal(product.Price))
				assert.Equal(t, 5, product.Stock)
				assert.Equal(t, "A fine widget", product.Description)
				assert.Equal(t, "/uploads/w.png", product.ImageURL)
				assert.Equal(t, int64(3), product.CategoryID)
				assert.True(t, product.IsActive)
			}).
			Return(nil)
	})

	product, err := fx.service.UpdateProduct(ctx, 7, input)
	require.NoError(t, err)
	assert.Equal(t, 5, product.Stock)
	assert.Equal(t, "A fine widget", product.Description)
}

func TestAdminService_UpdateProduct_ReactivatesSoftDeleted(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	existing := testProduct(11, 49.90, 12)
	existing.CategoryID = 3
	existing.IsActive = false

	input := &usecase.UpdateProductInput{IsActive: ptr(true)}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().CategoryRepo().Return(categoryRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().FindByID(ctx, int64(11)).Return(existing, nil)
		// Category untouched, so no category lookup happens.
		productRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Product")).
			Run(func(_ context.Context, product *entity.Product) {
				assert.True(t, product.IsActive)
				assert.Equal(t, 12, product.Stock)
			}).
			Return(nil)
	})

	product, err := fx.service.UpdateProduct(ctx, 11, input)
	require.NoError(t, err)
	assert.True(t, product.IsActive)
}

func TestAdminService_UpdateProduct_ChangedCategoryMustExist(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	existing := testProduct(11, 49.90, 12)
	existing.CategoryID = 1

	input := &usecase.UpdateProductInput{CategoryID: ptr(int64(3))}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().CategoryRepo().Return(categoryRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().FindByID(ctx, int64(11)).Return(existing, nil)
		categoryRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, repository.ErrCategoryNotFound)
	})

	_, err := fx.service.UpdateProduct(ctx, 11, input)

	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestAdminService_UpdateProduct_MergedResultMustStayValid(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	existing := testProduct(11, 49.90, 12)
	existing.CategoryID = 3

	input := &usecase.UpdateProductInput{Name: ptr("   ")}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().CategoryRepo().Return(categoryRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().FindByID(ctx, int64(11)).Return(existing, nil)
	})

	_, err := fx.service.UpdateProduct(ctx, 11, input)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAdminService_DeleteProduct_SoftDeletes(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().SoftDelete(ctx, int64(11)).Return(nil)

	err := fx.service.DeleteProduct(ctx, 11)

	assert.NoError(t, err)
}

func TestAdminService_DeleteProduct_RepeatDeleteSucceeds(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	// The repository treats a delete of an already-inactive product as a
	// no-op success, so a double delete never surfaces an error.
	fx.productRepo.EXPECT().SoftDelete(ctx, int64(11)).Return(nil).Twice()

	require.NoError(t, fx.service.DeleteProduct(ctx, 11))
	require.NoError(t, fx.service.DeleteProduct(ctx, 11))
}

func TestAdminService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().SoftDelete(ctx, int64(99)).Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, 99)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestAdminService_CreateCategory_DuplicateName(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(repository.ErrDuplicateCategory)

	_, err := fx.service.CreateCategory(ctx, &usecase.CategoryInput{Name: "Lighting"})

	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNameTaken))
}

func TestAdminService_CreateCategory_TrimsName(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(_ context.Context, category *entity.Category) {
			category.ID = 3
			assert.Equal(t, "Lighting", category.Name)
		}).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, &usecase.CategoryInput{Name: "  Lighting  "})
	require.NoError(t, err)
	assert.Equal(t, int64(3), category.ID)
}

func TestAdminService_DeleteCategory_BlockedByActiveProducts(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().CategoryRepo().Return(categoryRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		categoryRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Category{ID: 3, Name: "Lighting"}, nil)
		productRepo.EXPECT().CountActiveByCategory(ctx, int64(3)).Return(int64(2), nil)
	})

	err := fx.service.DeleteCategory(ctx, 3)

	assert.True(t, errors.Is(err, domainerrors.ErrCategoryHasProducts))
}

func TestAdminService_DeleteCategory_SoftDeletedProductsDoNotBlock(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().CategoryRepo().Return(categoryRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		categoryRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Category{ID: 3, Name: "Lighting"}, nil)
		productRepo.EXPECT().CountActiveByCategory(ctx, int64(3)).Return(int64(0), nil)
		categoryRepo.EXPECT().Delete(ctx, int64(3)).Return(nil)
	})

	err := fx.service.DeleteCategory(ctx, 3)

	assert.NoError(t, err)
}

func TestAdminService_UploadProductImage_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	content := strings.NewReader("fake image bytes")

	fx.imageStore.EXPECT().
		Save(ctx, ".png", content).
		Return("/uploads/3f2a.png", nil)

	url, err := fx.service.UploadProductImage(ctx, &usecase.UploadImageInput{
		Filename: "Lamp Photo.PNG",
		Size:     16,
		Content:  content,
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/3f2a.png", url)
}

func TestAdminService_UploadProductImage_RejectedExtension(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	_, err := fx.service.UploadProductImage(ctx, &usecase.UploadImageInput{
		Filename: "malware.exe",
		Size:     100,
		Content:  strings.NewReader("nope"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrImageExtension))
}

func TestAdminService_UploadProductImage_TooLarge(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	_, err := fx.service.UploadProductImage(ctx, &usecase.UploadImageInput{
		Filename: "huge.jpg",
		Size:     maxImageSize + 1,
		Content:  strings.NewReader(""),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrImageTooLarge))
}

func TestAdminService_UploadProductImage_StoreFailure(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	content := strings.NewReader("fake image bytes")

	fx.imageStore.EXPECT().
		Save(ctx, ".jpg", content).
		Return("", errors.New("disk full"))

	_, err := fx.service.UploadProductImage(ctx, &usecase.UploadImageInput{
		Filename: "photo.jpg",
		Size:     16,
		Content:  content,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrImageSaveFailed))
}
