package service

import (
	"context"
	"sync"
	"testing"

	cartpkg "github.com/RajaKumar829891/customer-API/cart"
	"github.com/RajaKumar829891/customer-API/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCartRepo mirrors the store semantics in memory: one draft order
// per customer, lines keyed by id, totals recomputed from lines.
type mockCartRepo struct {
	m        sync.Mutex
	products map[uint]*entity.Product
	orders   []*entity.Order
	nextID   uint
	created  int // CreateDraftCart call count
}

func newMockCartRepo(products ...*entity.Product) *mockCartRepo {
	r := &mockCartRepo{products: map[uint]*entity.Product{}, nextID: 1}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *mockCartRepo) GetDraftCart(_ context.Context, customerID uint) (*entity.Order, error) {
	r.m.Lock()
	defer r.m.Unlock()
	for _, o := range r.orders {
		if o.CustomerID == customerID && o.Status == entity.OrderDraft {
			return o, nil
		}
	}
	return nil, cartpkg.ErrCartNotFound
}

func (r *mockCartRepo) CreateDraftCart(_ context.Context, customerID uint, currency string) (*entity.Order, error) {
	r.m.Lock()
	defer r.m.Unlock()
	r.created++
	o := &entity.Order{ID: r.nextID, Name: "SO00001", CustomerID: customerID, Status: entity.OrderDraft, Currency: currency}
	r.nextID++
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *mockCartRepo) GetProduct(_ context.Context, productID uint) (*entity.Product, error) {
	r.m.Lock()
	defer r.m.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return nil, cartpkg.ErrProductUnavailable
	}
	return p, nil
}

func (r *mockCartRepo) CreateLine(_ context.Context, line *entity.OrderLine) (*entity.OrderLine, error) {
	r.m.Lock()
	defer r.m.Unlock()
	line.ID = r.nextID
	r.nextID++
	line.Product = r.products[line.ProductID]
	for _, o := range r.orders {
		if o.ID == line.OrderID {
			o.Lines = append(o.Lines, *line)
			return line, nil
		}
	}
	return nil, cartpkg.ErrCartNotFound
}

func (r *mockCartRepo) AddLineQuantity(_ context.Context, lineID uint, delta float64) error {
	r.m.Lock()
	defer r.m.Unlock()
	for _, o := range r.orders {
		for i := range o.Lines {
			if o.Lines[i].ID == lineID {
				o.Lines[i].Quantity += delta
				return nil
			}
		}
	}
	return cartpkg.ErrCartNotFound
}

func (r *mockCartRepo) RecomputeTotals(_ context.Context, orderID uint) (*entity.Order, error) {
	r.m.Lock()
	defer r.m.Unlock()
	for _, o := range r.orders {
		if o.ID != orderID {
			continue
		}
		var untaxed, total float64
		for i := range o.Lines {
			l := &o.Lines[i]
			l.PriceSubtotal = l.Quantity * l.PriceUnit
			l.PriceTotal = l.PriceSubtotal
			if l.Product != nil && l.Product.TaxRate > 0 {
				l.PriceTotal = l.PriceSubtotal * (1 + l.Product.TaxRate/100)
			}
			untaxed += l.PriceSubtotal
			total += l.PriceTotal
		}
		o.AmountUntaxed = untaxed
		o.AmountTotal = total
		o.AmountTax = total - untaxed
		return o, nil
	}
	return nil, cartpkg.ErrCartNotFound
}

func mug() *entity.Product {
	return &entity.Product{ID: 1, Name: "Mug", SKU: "MUG-001", ListPrice: 10, TaxRate: 15, Sellable: true, Active: true}
}

func TestAddToCartCreatesCartAndLine(t *testing.T) {
	repo := newMockCartRepo(mug())
	svc := NewCartService(repo, "http://host", "USD")

	res, err := svc.AddToCart(context.Background(), 3, cartpkg.AddToCartRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ItemsCount)
	assert.Equal(t, "Mug", res.ProductName)
	assert.InDelta(t, 23.0, res.CartTotal, 1e-9) // 2 * 10 * 1.15
	assert.Equal(t, 1, repo.created)
}

// Repeated adds of the same product merge into one line with the
// cumulative quantity, on the same cart.
func TestAddToCartIncrementsExistingLine(t *testing.T) {
	repo := newMockCartRepo(mug())
	svc := NewCartService(repo, "http://host", "USD")

	_, err := svc.AddToCart(context.Background(), 3, cartpkg.AddToCartRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	res, err := svc.AddToCart(context.Background(), 3, cartpkg.AddToCartRequest{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, 1, res.ItemsCount)
	assert.Equal(t, 1, repo.created, "second add must not create another cart")

	cart, err := repo.GetDraftCart(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5.0, cart.Lines[0].Quantity)
}

func TestAddToCartDistinctProducts(t *testing.T) {
	lamp := &entity.Product{ID: 2, Name: "Lamp", ListPrice: 25, Sellable: true, Active: true}
	repo := newMockCartRepo(mug(), lamp)
	svc := NewCartService(repo, "http://host", "USD")

	_, err := svc.AddToCart(context.Background(), 3, cartpkg.AddToCartRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	res, err := svc.AddToCart(context.Background(), 3, cartpkg.AddToCartRequest{ProductID: 2, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, res.ItemsCount)
}

func TestAddToCartUnavailableProduct(t *testing.T) {
	inactive := &entity.Product{ID: 9, Name: "Gone", ListPrice: 1, Sellable: true, Active: false}
	repo := newMockCartRepo(inactive)
	svc := NewCartService(repo, "http://host", "USD")

	_, err := svc.AddToCart(context.Background(), 3, cartpkg.AddToCartRequest{ProductID: 9, Quantity: 1})
	assert.ErrorIs(t, err, cartpkg.ErrProductUnavailable)

	_, err = svc.AddToCart(context.Background(), 3, cartpkg.AddToCartRequest{ProductID: 404, Quantity: 1})
	assert.ErrorIs(t, err, cartpkg.ErrProductUnavailable)

	assert.Equal(t, 0, repo.created, "failed adds must not create carts")
}

func TestAddToCartInvalidQuantity(t *testing.T) {
	repo := newMockCartRepo(mug())
	svc := NewCartService(repo, "http://host", "USD")

	_, err := svc.AddToCart(context.Background(), 3, cartpkg.AddToCartRequest{ProductID: 1, Quantity: 0})
	assert.ErrorIs(t, err, cartpkg.ErrInvalidQuantity)
}

// Unit price is captured when the line is created; later list-price
// changes do not reprice existing lines.
func TestAddToCartKeepsCapturedPrice(t *testing.T) {
	p := mug()
	repo := newMockCartRepo(p)
	svc := NewCartService(repo, "http://host", "USD")

	_, err := svc.AddToCart(context.Background(), 3, cartpkg.AddToCartRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	p.ListPrice = 99
	_, err = svc.AddToCart(context.Background(), 3, cartpkg.AddToCartRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	cart, err := repo.GetDraftCart(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 10.0, cart.Lines[0].PriceUnit)
}

func TestViewCartEmpty(t *testing.T) {
	repo := newMockCartRepo()
	svc := NewCartService(repo, "http://host", "USD")

	view, err := svc.ViewCart(context.Background(), 3, "A")
	require.NoError(t, err)
	assert.Nil(t, view)
	assert.Equal(t, 0, repo.created, "view must never create a cart")
}

func TestViewCart(t *testing.T) {
	repo := newMockCartRepo(mug())
	svc := NewCartService(repo, "http://host", "USD")

	_, err := svc.AddToCart(context.Background(), 3, cartpkg.AddToCartRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	view, err := svc.ViewCart(context.Background(), 3, "A")
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.Equal(t, "SO00001", view.Name)
	assert.Equal(t, "A", view.PartnerName)
	assert.Equal(t, "USD", view.Currency)
	assert.Equal(t, 1, view.ItemsCount)
	assert.InDelta(t, 20.0, view.Subtotal, 1e-9)
	assert.InDelta(t, 3.0, view.TaxAmount, 1e-9)
	assert.InDelta(t, 23.0, view.Total, 1e-9)

	require.Len(t, view.Lines, 1)
	line := view.Lines[0]
	assert.Equal(t, uint(1), line.ProductID)
	assert.Equal(t, "Mug", line.ProductName)
	assert.Equal(t, "MUG-001", line.ProductSKU)
	assert.Equal(t, 2.0, line.Quantity)
	assert.Equal(t, 10.0, line.PriceUnit)
	assert.InDelta(t, 20.0, line.PriceSubtotal, 1e-9)
	assert.InDelta(t, 23.0, line.PriceTotal, 1e-9)
}
