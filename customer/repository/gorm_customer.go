package repository

import (
	"context"

	customerpkg "github.com/RajaKumar829891/customer-API/customer"
	"github.com/RajaKumar829891/customer-API/entity"
	"gorm.io/gorm"
)

// GormCustomerRepo implements customer.CustomerRepository using GORM.
type GormCustomerRepo struct {
	db *gorm.DB
}

func NewGormCustomerRepo(db *gorm.DB) customerpkg.CustomerRepository {
	return &GormCustomerRepo{db: db}
}

func (r *GormCustomerRepo) CustomerEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCustomerRepo) UserLoginExists(ctx context.Context, login string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("login = ?", login).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCustomerRepo) StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) StoreUser(ctx context.Context, u *entity.User) (*entity.User, error) {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}
