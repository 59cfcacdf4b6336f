package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"shop-service/internal/model"
	"shop-service/internal/service"
	shopmetrics "shop-service/prometheus"
)

type cartRepo struct {
	db *gorm.DB
}

// NewCartRepository creates the gorm cart repository.
func NewCartRepository(db *gorm.DB) service.CartRepository {
	return &cartRepo{db: db}
}

// InTx runs fn against a repository bound to one transaction.
func (r *cartRepo) InTx(ctx context.Context, fn func(service.CartRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&cartRepo{db: tx})
	})
}

func (r *cartRepo) GetByUser(ctx context.Context, userID uint) (*model.Cart, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var cart model.Cart
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, translate(err)
	}
	return &cart, nil
}

func (r *cartRepo) GetOrCreate(ctx context.Context, userID uint) (*model.Cart, error) {
	cart, err := r.GetByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, service.ErrNotFound) {
		return nil, err
	}
	cart = &model.Cart{UserID: userID}
	defer shopmetrics.TrackDBOperation("insert")(time.Now())
	if err := r.db.WithContext(ctx).Create(cart).Error; err != nil {
		return nil, translate(err)
	}
	return cart, nil
}

func (r *cartRepo) GetItem(ctx context.Context, cartID, productID uint) (*model.CartItem, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *cartRepo) CreateItem(ctx context.Context, item *model.CartItem) error {
	defer shopmetrics.TrackDBOperation("insert")(time.Now())
	return translate(r.db.WithContext(ctx).Create(item).Error)
}

func (r *cartRepo) UpdateItemCount(ctx context.Context, itemID uint, count int) error {
	defer shopmetrics.TrackDBOperation("update")(time.Now())
	result := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ?", itemID).
		Update("count", count)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (r *cartRepo) DeleteItem(ctx context.Context, itemID uint) error {
	defer shopmetrics.TrackDBOperation("delete")(time.Now())
	return r.db.WithContext(ctx).Delete(&model.CartItem{}, itemID).Error
}

func (r *cartRepo) ListItems(ctx context.Context, cartID uint) ([]model.CartItem, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Tags").
		Where("cart_id = ?", cartID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepo) ClearItems(ctx context.Context, cartID uint) error {
	defer shopmetrics.TrackDBOperation("delete")(time.Now())
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItem{}).Error
}
