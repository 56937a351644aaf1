package repository

import (
	"context"
	"errors"
	"fmt"

	cartpkg "github.com/RajaKumar829891/customer-API/cart"
	"github.com/RajaKumar829891/customer-API/entity"
	"gorm.io/gorm"
)

// GormCartRepo implements cart.CartRepository using GORM.
type GormCartRepo struct {
	db *gorm.DB
}

func NewGormCartRepo(db *gorm.DB) cartpkg.CartRepository {
	return &GormCartRepo{db: db}
}

func (r *GormCartRepo) GetDraftCart(ctx context.Context, customerID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("order_lines.id asc") }).
		Preload("Lines.Product").
		Where("customer_id = ? AND status = ?", customerID, entity.OrderDraft).
		Order("updated_at desc").
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, cartpkg.ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormCartRepo) CreateDraftCart(ctx context.Context, customerID uint, currency string) (*entity.Order, error) {
	o := &entity.Order{
		CustomerID: customerID,
		Status:     entity.OrderDraft,
		Currency:   currency,
	}
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	// Reference is derived from the id, so it is only known post-insert.
	o.Name = fmt.Sprintf("SO%05d", o.ID)
	if err := r.db.WithContext(ctx).Model(o).Update("name", o.Name).Error; err != nil {
		return nil, err
	}
	return o, nil
}

func (r *GormCartRepo) GetProduct(ctx context.Context, productID uint) (*entity.Product, error) {
	var p entity.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, cartpkg.ErrProductUnavailable
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormCartRepo) CreateLine(ctx context.Context, line *entity.OrderLine) (*entity.OrderLine, error) {
	if err := r.db.WithContext(ctx).Create(line).Error; err != nil {
		return nil, err
	}
	return line, nil
}

func (r *GormCartRepo) AddLineQuantity(ctx context.Context, lineID uint, delta float64) error {
	return r.db.WithContext(ctx).Model(&entity.OrderLine{}).
		Where("id = ?", lineID).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

// RecomputeTotals reprices each line from its captured unit price and
// the product's tax rate, then rolls the sums up to the order.
func (r *GormCartRepo) RecomputeTotals(ctx context.Context, orderID uint) (*entity.Order, error) {
	var lines []entity.OrderLine
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}

	var untaxed, total float64
	for i := range lines {
		l := &lines[i]
		subtotal := l.Quantity * l.PriceUnit
		lineTotal := subtotal
		if l.Product != nil && l.Product.TaxRate > 0 {
			lineTotal = subtotal * (1 + l.Product.TaxRate/100)
		}
		err := r.db.WithContext(ctx).Model(l).Updates(map[string]interface{}{
			"price_subtotal": subtotal,
			"price_total":    lineTotal,
		}).Error
		if err != nil {
			return nil, err
		}
		untaxed += subtotal
		total += lineTotal
	}

	err = r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"amount_untaxed": untaxed,
			"amount_tax":     total - untaxed,
			"amount_total":   total,
		}).Error
	if err != nil {
		return nil, err
	}

	var o entity.Order
	err = r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("order_lines.id asc") }).
		Preload("Lines.Product").
		First(&o, "id = ?", orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}
