package service

import (
	"context"

	"shop-service/internal/catalog"
	"shop-service/internal/model"
)

// Repository contracts consumed by the services. The gorm
// implementations live in internal/repository; tests substitute
// in-memory fakes. Implementations return ErrNotFound for missing rows
// and ErrConflict for uniqueness violations.

// ProductRepository reads and updates product rows.
type ProductRepository interface {
	// GetByID returns any product row, archived or not.
	GetByID(ctx context.Context, id uint) (*model.Product, error)
	// GetVisible returns a non-archived product with its tags, images,
	// specifications and reviews loaded.
	GetVisible(ctx context.Context, id uint) (*model.Product, error)
	ListPopular(ctx context.Context) ([]model.Product, error)
	ListLimited(ctx context.Context) ([]model.Product, error)
	ListBanners(ctx context.Context, limit int) ([]model.Product, error)
	// UpdateAggregates writes the derived rating and review count.
	UpdateAggregates(ctx context.Context, id uint, rating float64, reviewsCount int) error
}

// CatalogRepository applies a normalized catalog query to storage.
type CatalogRepository interface {
	Count(ctx context.Context, q catalog.Query) (int64, error)
	List(ctx context.Context, q catalog.Query, offset, limit int) ([]model.Product, error)
}

// CategoryRepository reads the category tree.
type CategoryRepository interface {
	ListParents(ctx context.Context) ([]model.Category, error)
}

// TagRepository reads tags.
type TagRepository interface {
	ListAll(ctx context.Context) ([]model.Tag, error)
}

// DiscountRepository reads the sales listing.
type DiscountRepository interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]model.Discount, error)
}

// ReviewRepository persists reviews and computes per-product stats.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ListByProduct(ctx context.Context, productID uint) ([]model.Review, error)
	// Stats returns the review count and unweighted mean rate for a
	// product; a product with no reviews reports (0, 0).
	Stats(ctx context.Context, productID uint) (int, float64, error)
}

// CartRepository persists carts and their line items. InTx runs fn with
// a repository bound to a single transaction so a read-modify-write
// mutation commits atomically.
type CartRepository interface {
	InTx(ctx context.Context, fn func(CartRepository) error) error
	GetByUser(ctx context.Context, userID uint) (*model.Cart, error)
	GetOrCreate(ctx context.Context, userID uint) (*model.Cart, error)
	GetItem(ctx context.Context, cartID, productID uint) (*model.CartItem, error)
	CreateItem(ctx context.Context, item *model.CartItem) error
	UpdateItemCount(ctx context.Context, itemID uint, count int) error
	DeleteItem(ctx context.Context, itemID uint) error
	ListItems(ctx context.Context, cartID uint) ([]model.CartItem, error)
	ClearItems(ctx context.Context, cartID uint) error
}

// OrderRepository persists orders and their line items.
type OrderRepository interface {
	InTx(ctx context.Context, fn func(OrderRepository) error) error
	Create(ctx context.Context, order *model.Order) error
	// GetByID returns an order with its lookup rows and product lines
	// loaded.
	GetByID(ctx context.Context, id uint) (*model.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Order, error)
	Update(ctx context.Context, order *model.Order) error
}

// LookupRepository resolves order lookup rows by semantic name.
type LookupRepository interface {
	StatusByName(ctx context.Context, name string) (*model.OrderStatus, error)
	DeliveryByName(ctx context.Context, name string) (*model.DeliveryType, error)
	PaymentByName(ctx context.Context, name string) (*model.PaymentType, error)
}

// ProfileRepository reads user profiles for order presentation.
type ProfileRepository interface {
	GetByUser(ctx context.Context, userID uint) (*model.UserProfile, error)
}
