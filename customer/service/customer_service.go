package service

import (
	"context"
	"strings"

	customerpkg "github.com/RajaKumar829891/customer-API/customer"
	"github.com/RajaKumar829891/customer-API/entity"
	"golang.org/x/crypto/bcrypt"
)

// customerService implements CustomerService.
type customerService struct {
	repo customerpkg.CustomerRepository
}

// NewCustomerService constructs a CustomerService backed by the provided repository.
func NewCustomerService(repo customerpkg.CustomerRepository) customerpkg.CustomerService {
	return &customerService{repo: repo}
}

// RegisterCustomer creates a Customer profile and a linked User
// credential with role "portal". The two creates are not atomic: if the
// user create fails the customer row stays behind.
func (s *customerService) RegisterCustomer(ctx context.Context, req customerpkg.RegisterCustomerRequest) (*customerpkg.Registration, error) {
	email := customerpkg.NormalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, customerpkg.ErrInvalidEmail
	}

	exists, err := s.repo.CustomerEmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, customerpkg.ErrEmailExists
	}

	exists, err = s.repo.UserLoginExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, customerpkg.ErrUserLoginExists
	}

	c := &entity.Customer{
		Name:   strings.TrimSpace(req.Name),
		Email:  email,
		Phone:  strings.TrimSpace(req.Phone),
		Active: true,
	}
	createdCustomer, err := s.repo.StoreCustomer(ctx, c)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:         createdCustomer.Name,
		Login:        email,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RolePortal,
		CustomerID:   createdCustomer.ID,
		Active:       true,
	}
	createdUser, err := s.repo.StoreUser(ctx, u)
	if err != nil {
		return nil, err
	}

	return &customerpkg.Registration{
		CustomerID: createdCustomer.ID,
		UserID:     createdUser.ID,
		Email:      email,
	}, nil
}
