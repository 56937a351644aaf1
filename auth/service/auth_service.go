package service

import (
	"context"
	"log"
	"time"

	authpkg "github.com/RajaKumar829891/customer-API/auth"
	customerpkg "github.com/RajaKumar829891/customer-API/customer"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

type authService struct {
	repo      authpkg.Repository
	jwtSecret string
}

func NewAuthService(repo authpkg.Repository, jwtSecret string) authpkg.Service {
	return &authService{repo: repo, jwtSecret: jwtSecret}
}

// Login verifies the credential pair, checks the role gate and mints a
// session. Store misses and password mismatches are reported the same way.
func (s *authService) Login(ctx context.Context, req authpkg.LoginRequest) (*authpkg.Session, error) {
	login := customerpkg.NormalizeEmail(req.Email)

	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		log.Printf("authentication error for %q: %v", login, err)
		return nil, authpkg.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, authpkg.ErrInvalidCredentials
	}

	if !user.HasAPIAccess() {
		return nil, authpkg.ErrAccessDenied
	}

	cust, err := s.repo.GetCustomerByID(ctx, user.CustomerID)
	if err != nil {
		return nil, err
	}

	sessionID, err := authpkg.SignSessionJWT(s.jwtSecret, user.ID, cust.ID, cust.Name, sessionTTL)
	if err != nil {
		return nil, err
	}
	token, err := authpkg.NewSessionToken()
	if err != nil {
		return nil, err
	}

	return &authpkg.Session{
		UserID:        user.ID,
		CustomerID:    cust.ID,
		CustomerName:  cust.Name,
		CustomerEmail: cust.Email,
		SessionID:     sessionID,
		SessionToken:  token,
	}, nil
}
