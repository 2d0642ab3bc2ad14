package postgres

import (
	"context"
	"fmt"

	"dealScout/domain"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		DB: db,
	}
}

// FindAllWithOffers loads the whole catalog with variants and offers in
// insertion order. Ordering matters: ranking ties break by row order.
func (r *CatalogRepository) FindAllWithOffers(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("variants.id")
		}).
		Preload("Variants.Offers", func(db *gorm.DB) *gorm.DB {
			return db.Order("offers.id")
		}).
		Order("products.id").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return products, nil
}

// ReplaceAll swaps the stored catalog for the given one inside a single
// transaction, so a failed import never leaves a half-written catalog.
func (r *CatalogRepository) ReplaceAll(ctx context.Context, products []domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Offer{}).Error; err != nil {
			return fmt.Errorf("clear offers: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Variant{}).Error; err != nil {
			return fmt.Errorf("clear variants: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Product{}).Error; err != nil {
			return fmt.Errorf("clear products: %w", err)
		}

		for i := range products {
			if err := tx.Create(&products[i]).Error; err != nil {
				return fmt.Errorf("create product %q: %w", products[i].ProductName, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace catalog: %w", err)
	}

	return nil
}
