package service

import (
	"context"
	"log"
	"strings"

	catalogpkg "github.com/RajaKumar829891/customer-API/catalog"
	"github.com/RajaKumar829891/customer-API/entity"
)

// catalogService implements CatalogService.
type catalogService struct {
	repo    catalogpkg.CatalogRepository
	stock   catalogpkg.StockProvider // nil when the stock subsystem is absent
	baseURL string
}

// NewCatalogService constructs a CatalogService. stock may be nil.
func NewCatalogService(repo catalogpkg.CatalogRepository, stock catalogpkg.StockProvider, baseURL string) catalogpkg.CatalogService {
	return &catalogService{repo: repo, stock: stock, baseURL: baseURL}
}

// ListProducts returns one page of sellable, active products ordered by
// name, plus the total match count and a has-more flag.
func (s *catalogService) ListProducts(ctx context.Context, req catalogpkg.ListProductsRequest) (*catalogpkg.ProductPage, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = catalogpkg.DefaultLimit
	}
	if limit > catalogpkg.MaxLimit {
		limit = catalogpkg.MaxLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	filter := catalogpkg.ProductFilter{
		CategoryID: req.CategoryID,
		Search:     strings.TrimSpace(req.Search),
		Limit:      limit,
		Offset:     offset,
	}

	products, err := s.repo.FindProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]catalogpkg.ProductView, 0, len(products))
	for i := range products {
		views = append(views, s.productView(ctx, &products[i]))
	}

	total, err := s.repo.CountProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &catalogpkg.ProductPage{
		Products:   views,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
		HasMore:    int64(offset+limit) < total,
	}, nil
}

func (s *catalogService) productView(ctx context.Context, p *entity.Product) catalogpkg.ProductView {
	v := catalogpkg.ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.SaleDescriptionOrDefault(),
		Price:       p.ListPrice,
		Currency:    p.Currency,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL(s.baseURL),
		UOM:         p.UnitOfMeasure,
		SKU:         p.SKU,
		IsAvailable: p.IsAvailable(),
	}
	if p.Category != nil {
		v.Category = p.Category.Name
	}
	v.AvailableQty = s.availableQty(ctx, p.ID)
	return v
}

// availableQty asks the stock subsystem for on-hand quantity. When the
// subsystem is absent or failing the product is reported with zero
// stock; the listing itself never fails on stock.
func (s *catalogService) availableQty(ctx context.Context, productID uint) float64 {
	if s.stock == nil {
		return 0
	}
	qty, err := s.stock.AvailableQty(ctx, productID)
	if err != nil {
		log.Printf("stock lookup failed for product %d: %v", productID, err)
		return 0
	}
	return qty
}

// ListCategories returns every category with its parent and full path.
func (s *catalogService) ListCategories(ctx context.Context) ([]catalogpkg.CategoryView, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]*entity.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	views := make([]catalogpkg.CategoryView, 0, len(categories))
	for i := range categories {
		c := &categories[i]
		v := catalogpkg.CategoryView{
			ID:           c.ID,
			Name:         c.Name,
			ParentID:     c.ParentID,
			CompleteName: completeName(c, byID),
		}
		if c.ParentID != nil {
			if parent, ok := byID[*c.ParentID]; ok {
				v.ParentName = &parent.Name
			}
		}
		views = append(views, v)
	}
	return views, nil
}

// completeName walks the parent chain to build "Root / Child / Leaf".
func completeName(c *entity.Category, byID map[uint]*entity.Category) string {
	names := []string{c.Name}
	seen := map[uint]bool{c.ID: true}
	for c.ParentID != nil {
		parent, ok := byID[*c.ParentID]
		if !ok || seen[parent.ID] {
			break
		}
		names = append([]string{parent.Name}, names...)
		seen[parent.ID] = true
		c = parent
	}
	return strings.Join(names, " / ")
}
