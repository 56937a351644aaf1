package auth

import (
	"context"

	"github.com/RajaKumar829891/customer-API/entity"
)

// Repository exposes read operations used for authentication.
type Repository interface {
	GetUserByLogin(ctx context.Context, login string) (*entity.User, error)
	GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error)
}
