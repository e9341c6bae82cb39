package postgres

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// prepareSchema runs migrations and optional demo seeding at startup,
// gated by config so production deployments can manage schema externally.
func prepareSchema(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if !cfg.Seed.Migrate {
		return nil
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.CartLineModel{},
		&model.OrderModel{},
		&model.OrderLineModel{},
		&model.UserModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate failed")
	}

	logger.InfoContext(ctx, "database schema migrated")

	if !cfg.Seed.Demo {
		return nil
	}

	return seedDemoData(ctx, db, logger)
}

// seedDemoData inserts a small demo catalog. It is idempotent: when any
// category already exists the seed is skipped entirely.
func seedDemoData(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count categories")
	}
	if count > 0 {
		return nil
	}

	categories := []*model.CategoryModel{
		{Name: "Electronics", Description: "Phones, laptops and accessories"},
		{Name: "Books", Description: "Fiction and non-fiction titles"},
		{Name: "Home & Kitchen", Description: "Everyday household goods"},
	}
	if err := db.WithContext(ctx).Create(&categories).Error; err != nil {
		return errors.Wrap(err, "failed to seed categories")
	}

	products := []*model.ProductModel{
		{
			Name:        "Wireless Headphones",
			Description: "Over-ear headphones with active noise cancelling",
			Price:       decimal.NewFromFloat(199.99),
			Stock:       25,
			CategoryID:  categories[0].ID,
			IsActive:    true,
		},
		{
			Name:        "Mechanical Keyboard",
			Description: "Tenkeyless keyboard with hot-swappable switches",
			Price:       decimal.NewFromFloat(89.50),
			Stock:       40,
			CategoryID:  categories[0].ID,
			IsActive:    true,
		},
		{
			Name:        "The Go Programming Language",
			Description: "Donovan and Kernighan's reference on Go",
			Price:       decimal.NewFromFloat(39.99),
			Stock:       60,
			CategoryID:  categories[1].ID,
			IsActive:    true,
		},
		{
			Name:        "Cast Iron Skillet",
			Description: "Pre-seasoned 26 cm skillet",
			Price:       decimal.NewFromFloat(34.00),
			Stock:       15,
			CategoryID:  categories[2].ID,
			IsActive:    true,
		},
	}
	if err := db.WithContext(ctx).Create(&products).Error; err != nil {
		return errors.Wrap(err, "failed to seed products")
	}

	logger.InfoContext(ctx, "demo catalog seeded",
		slog.Int("categories", len(categories)),
		slog.Int("products", len(products)),
	)

	return nil
}
