package customer

import (
	"context"

	"github.com/RajaKumar829891/customer-API/entity"
)

// CustomerRepository specifies the identity-store operations used by
// registration.
type CustomerRepository interface {
	CustomerEmailExists(ctx context.Context, email string) (bool, error)
	UserLoginExists(ctx context.Context, login string) (bool, error)
	StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	StoreUser(ctx context.Context, u *entity.User) (*entity.User, error)
}
