package service

import (
	"context"
	"errors"

	cartpkg "github.com/RajaKumar829891/customer-API/cart"
	"github.com/RajaKumar829891/customer-API/entity"
)

// cartService implements CartService.
type cartService struct {
	repo            cartpkg.CartRepository
	baseURL         string
	defaultCurrency string
}

// NewCartService constructs a CartService backed by the provided repository.
func NewCartService(repo cartpkg.CartRepository, baseURL, defaultCurrency string) cartpkg.CartService {
	return &cartService{repo: repo, baseURL: baseURL, defaultCurrency: defaultCurrency}
}

// getOrCreateCart resolves the customer's draft cart, creating one when
// none exists. Safe under sequential repeats; concurrent first adds from
// the same customer are left to the store's isolation.
func (s *cartService) getOrCreateCart(ctx context.Context, customerID uint) (*entity.Order, error) {
	cart, err := s.repo.GetDraftCart(ctx, customerID)
	if errors.Is(err, cartpkg.ErrCartNotFound) {
		return s.repo.CreateDraftCart(ctx, customerID, s.defaultCurrency)
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddToCart upserts one line: an existing line for the product gets its
// quantity incremented, otherwise a new line is created at the product's
// current list price. Totals are recomputed afterwards.
func (s *cartService) AddToCart(ctx context.Context, customerID uint, req cartpkg.AddToCartRequest) (*cartpkg.AddToCartResult, error) {
	if req.Quantity <= 0 {
		return nil, cartpkg.ErrInvalidQuantity
	}

	product, err := s.repo.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsAvailable() {
		return nil, cartpkg.ErrProductUnavailable
	}

	cart, err := s.getOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var existing *entity.OrderLine
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == req.ProductID {
			existing = &cart.Lines[i]
			break
		}
	}

	if existing != nil {
		if err := s.repo.AddLineQuantity(ctx, existing.ID, req.Quantity); err != nil {
			return nil, err
		}
	} else {
		line := &entity.OrderLine{
			OrderID:   cart.ID,
			ProductID: product.ID,
			Quantity:  req.Quantity,
			PriceUnit: product.ListPrice,
		}
		if _, err := s.repo.CreateLine(ctx, line); err != nil {
			return nil, err
		}
	}

	refreshed, err := s.repo.RecomputeTotals(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	return &cartpkg.AddToCartResult{
		CartID:      refreshed.ID,
		CartTotal:   refreshed.AmountTotal,
		ItemsCount:  len(refreshed.Lines),
		ProductName: product.Name,
	}, nil
}

// ViewCart returns the current draft cart, or nil when there is none.
func (s *cartService) ViewCart(ctx context.Context, customerID uint, customerName string) (*cartpkg.CartView, error) {
	cart, err := s.repo.GetDraftCart(ctx, customerID)
	if errors.Is(err, cartpkg.ErrCartNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	lines := make([]cartpkg.CartLineView, 0, len(cart.Lines))
	for i := range cart.Lines {
		l := &cart.Lines[i]
		v := cartpkg.CartLineView{
			ID:            l.ID,
			ProductID:     l.ProductID,
			Quantity:      l.Quantity,
			PriceUnit:     l.PriceUnit,
			PriceSubtotal: l.PriceSubtotal,
			PriceTotal:    l.PriceTotal,
		}
		if l.Product != nil {
			v.ProductName = l.Product.Name
			v.ProductSKU = l.Product.SKU
			v.ImageURL = l.Product.ImageURL(s.baseURL)
		}
		lines = append(lines, v)
	}

	return &cartpkg.CartView{
		ID:          cart.ID,
		Name:        cart.Name,
		Lines:       lines,
		Subtotal:    cart.AmountUntaxed,
		TaxAmount:   cart.AmountTax,
		Total:       cart.AmountTotal,
		Currency:    cart.Currency,
		ItemsCount:  len(cart.Lines),
		PartnerName: customerName,
	}, nil
}
