package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// maxImageSize is the upload ceiling for product images.
const maxImageSize = 5 << 20 // 5 MiB

// allowedImageExtensions is the extension allow-list for product images.
var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	imageStore   service.ImageStore
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	ImageStore   service.ImageStore
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		imageStore:   params.ImageStore,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts retrieves every product including soft-deleted ones.
func (srv *adminService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list all products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list all products")
	}

	return products, nil
}

// GetProduct retrieves a product regardless of its active flag.
func (srv *adminService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// CreateProduct adds a product to the catalog. The category must exist.
func (srv *adminService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var created *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()
		productRepo := repoFactory.ProductRepo()

		if _, err := categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to find category")
		}

		product := &entity.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Stock:       input.Stock,
			ImageURL:    input.ImageURL,
			CategoryID:  input.CategoryID,
			IsActive:    true,
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}

		if err := productRepo.Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		created = product

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created",
		slog.Int64("productID", created.ID),
		slog.String("name", created.Name),
	)

	return created, nil
}

// UpdateProduct applies a partial update to an existing product, soft-deleted
// or not. Omitted fields keep their stored values; setting IsActive back to
// true reactivates a soft-deleted product.
func (srv *adminService) UpdateProduct(ctx context.Context, id int64, input *usecase.UpdateProductInput) (*entity.Product, error) {
	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		if input.CategoryID != nil && *input.CategoryID != product.CategoryID {
			if _, err := categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return domainerrors.ErrCategoryNotFound
				}

				return errors.Wrap(err, "failed to find category")
			}
		}

		applyProductUpdate(product, input)
		if err := validateProductFields(product.Name, product.Price, product.Stock, product.CategoryID); err != nil {
			return err
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		updated = product

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product updated", slog.Int64("productID", id))

	return updated, nil
}

// DeleteProduct soft-deletes a product.
func (srv *adminService) DeleteProduct(ctx context.Context, id int64) error {
	if err := srv.productRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product soft-deleted", slog.Int64("productID", id))

	return nil
}

// ListCategories retrieves all categories ordered by name.
func (srv *adminService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateCategory adds a category.
func (srv *adminService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}
	if category.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category name is required")
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, domainerrors.ErrCategoryNameTaken
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created",
		slog.Int64("categoryID", category.ID),
		slog.String("name", category.Name),
	)

	return category, nil
}

// UpdateCategory modifies an existing category.
func (srv *adminService) UpdateCategory(ctx context.Context, id int64, input *usecase.CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category name is required")
	}

	category := &entity.Category{
		ID:          id,
		Name:        name,
		Description: input.Description,
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return nil, domainerrors.ErrCategoryNotFound
		case errors.Is(err, repository.ErrDuplicateCategory):
			return nil, domainerrors.ErrCategoryNameTaken
		default:
			return nil, errors.Wrap(err, "failed to update category")
		}
	}

	return category, nil
}

// DeleteCategory removes a category permanently, unless an active product
// still references it. Soft-deleted products do not block deletion; they
// keep a dangling category id for history only.
func (srv *adminService) DeleteCategory(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()
		productRepo := repoFactory.ProductRepo()

		if _, err := categoryRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to find category")
		}

		count, err := productRepo.CountActiveByCategory(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count products in category")
		}
		if count > 0 {
			return domainerrors.ErrCategoryHasProducts
		}

		if err := categoryRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to delete category")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Category deleted", slog.Int64("categoryID", id))

	return nil
}

// UploadProductImage validates and stores an image, returning its URL.
func (srv *adminService) UploadProductImage(ctx context.Context, input *usecase.UploadImageInput) (string, error) {
	ext := strings.ToLower(filepath.Ext(input.Filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return "", domainerrors.ErrImageExtension
	}

	if input.Size <= 0 || input.Size > maxImageSize {
		return "", domainerrors.ErrImageTooLarge
	}

	url, err := srv.imageStore.Save(ctx, ext, input.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store product image",
			slog.String("filename", input.Filename),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrImageSaveFailed
	}

	srv.log(ctx).Info("Product image stored",
		slog.String("filename", input.Filename),
		slog.String("url", url),
	)

	return url, nil
}

// applyProductUpdate copies the provided fields onto the loaded product.
// Omitted fields keep their stored values.
func applyProductUpdate(product *entity.Product, input *usecase.UpdateProductInput) {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
}

// validateProductInput enforces the create invariants: non-empty name,
// non-negative price and stock, a category reference.
func validateProductInput(input *usecase.ProductInput) error {
	return validateProductFields(input.Name, input.Price, input.Stock, input.CategoryID)
}

// validateProductFields checks the invariants every stored product must hold.
// Updates run it against the merged result, so a partial payload cannot
// leave the product in an invalid state.
func validateProductFields(name string, price decimal.Decimal, stock int, categoryID int64) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}
	if price.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if stock < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	}
	if categoryID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("category is required")
	}

	return nil
}
