package repository

import (
	"context"
	"errors"

	catalogpkg "github.com/RajaKumar829891/customer-API/catalog"
	"github.com/RajaKumar829891/customer-API/entity"
	"gorm.io/gorm"
)

// GormCatalogRepo implements catalog.CatalogRepository using GORM.
type GormCatalogRepo struct {
	db *gorm.DB
}

func NewGormCatalogRepo(db *gorm.DB) catalogpkg.CatalogRepository {
	return &GormCatalogRepo{db: db}
}

func (r *GormCatalogRepo) filtered(ctx context.Context, f catalogpkg.ProductFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("sellable = ? AND active = ?", true, true)
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR sku ILIKE ?", pattern, pattern)
	}
	return q
}

func (r *GormCatalogRepo) FindProducts(ctx context.Context, f catalogpkg.ProductFilter) ([]entity.Product, error) {
	var products []entity.Product
	err := r.filtered(ctx, f).
		Preload("Category").
		Order("name asc").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormCatalogRepo) CountProducts(ctx context.Context, f catalogpkg.ProductFilter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, f).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormCatalogRepo) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.db.WithContext(ctx).Order("id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GormStockRepo implements catalog.StockProvider against the stock_levels
// table. Wire it only when the stock subsystem is enabled.
type GormStockRepo struct {
	db *gorm.DB
}

func NewGormStockRepo(db *gorm.DB) catalogpkg.StockProvider {
	return &GormStockRepo{db: db}
}

func (r *GormStockRepo) AvailableQty(ctx context.Context, productID uint) (float64, error) {
	var level entity.StockLevel
	err := r.db.WithContext(ctx).First(&level, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return level.Quantity, nil
}
