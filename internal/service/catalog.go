package service

import (
	"context"
	"fmt"

	"shop-service/internal/catalog"
	"shop-service/internal/model"
)

// ProductPage is one page of the catalog listing.
type ProductPage struct {
	Items       []model.Product
	CurrentPage int
	LastPage    int
}

// DiscountPage is one page of the sales listing.
type DiscountPage struct {
	Items       []model.Discount
	CurrentPage int
	LastPage    int
}

// CatalogService serves the public read side of the store: the
// filtered catalog, product details, flagged subsets, sales, categories
// and tags.
type CatalogService struct {
	catalog    CatalogRepository
	products   ProductRepository
	categories CategoryRepository
	tags       TagRepository
	discounts  DiscountRepository
}

// NewCatalogService creates a catalog service.
func NewCatalogService(cat CatalogRepository, products ProductRepository, categories CategoryRepository, tags TagRepository, discounts DiscountRepository) *CatalogService {
	return &CatalogService{catalog: cat, products: products, categories: categories, tags: tags, discounts: discounts}
}

// List resolves one catalog page for a normalized query. The requested
// page number clamps to the valid range, so a page past the end returns
// the last page's contents.
func (s *CatalogService) List(ctx context.Context, q catalog.Query) (*ProductPage, error) {
	total, err := s.catalog.Count(ctx, q)
	if err != nil {
		return nil, err
	}
	page := catalog.Paginate(total, q.Page)
	items, err := s.catalog.List(ctx, q, page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}
	return &ProductPage{Items: items, CurrentPage: page.Number, LastPage: page.LastPage}, nil
}

// Detail returns a non-archived product with its relations loaded.
func (s *CatalogService) Detail(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.products.GetVisible(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", id, err)
	}
	return product, nil
}

// Popular returns the products flagged popular.
func (s *CatalogService) Popular(ctx context.Context) ([]model.Product, error) {
	return s.products.ListPopular(ctx)
}

// Limited returns the products flagged limited.
func (s *CatalogService) Limited(ctx context.Context) ([]model.Product, error) {
	return s.products.ListLimited(ctx)
}

// Banners returns up to three products flagged for the banner strip.
func (s *CatalogService) Banners(ctx context.Context) ([]model.Product, error) {
	return s.products.ListBanners(ctx, 3)
}

// Sales resolves one page of the discount listing, ordered by product.
func (s *CatalogService) Sales(ctx context.Context, pageNumber int) (*DiscountPage, error) {
	total, err := s.discounts.Count(ctx)
	if err != nil {
		return nil, err
	}
	page := catalog.Paginate(total, pageNumber)
	items, err := s.discounts.List(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}
	return &DiscountPage{Items: items, CurrentPage: page.Number, LastPage: page.LastPage}, nil
}

// Categories returns the parent categories with one level of
// subcategories loaded.
func (s *CatalogService) Categories(ctx context.Context) ([]model.Category, error) {
	return s.categories.ListParents(ctx)
}

// Tags returns all tags.
func (s *CatalogService) Tags(ctx context.Context) ([]model.Tag, error) {
	return s.tags.ListAll(ctx)
}
