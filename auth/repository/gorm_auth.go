package repository

import (
	"context"

	authpkg "github.com/RajaKumar829891/customer-API/auth"
	"github.com/RajaKumar829891/customer-API/entity"
	"gorm.io/gorm"
)

// GormAuthRepo implements auth.Repository using GORM.
type GormAuthRepo struct {
	db *gorm.DB
}

func NewGormAuthRepo(db *gorm.DB) authpkg.Repository {
	return &GormAuthRepo{db: db}
}

func (r *GormAuthRepo) GetUserByLogin(ctx context.Context, login string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).First(&u, "login = ? AND active = ?", login, true).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormAuthRepo) GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
