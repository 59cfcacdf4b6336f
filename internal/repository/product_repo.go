// Package repository holds the gorm-backed implementations of the
// repository contracts declared in internal/service. Missing rows are
// translated into service.ErrNotFound so callers never see storage
// error types.
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

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return service.ErrConflict
	}
	return err
}

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository creates the gorm product repository.
func NewProductRepository(db *gorm.DB) service.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *productRepo) GetVisible(ctx context.Context, id uint) (*model.Product, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Images").
		Preload("Specifications").
		Preload("Reviews").
		Where("archived = ?", false).
		First(&p, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *productRepo) ListPopular(ctx context.Context) ([]model.Product, error) {
	return r.listFlagged(ctx, "popular", 0)
}

func (r *productRepo) ListLimited(ctx context.Context) ([]model.Product, error) {
	return r.listFlagged(ctx, "limited", 0)
}

func (r *productRepo) ListBanners(ctx context.Context, limit int) ([]model.Product, error) {
	return r.listFlagged(ctx, "banner", limit)
}

func (r *productRepo) listFlagged(ctx context.Context, column string, limit int) ([]model.Product, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var products []model.Product
	q := r.db.WithContext(ctx).
		Preload("Tags").
		Where(column+" = ? AND archived = ?", true, false)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) UpdateAggregates(ctx context.Context, id uint, rating float64, reviewsCount int) error {
	defer shopmetrics.TrackDBOperation("update")(time.Now())
	result := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating":        rating,
			"reviews_count": reviewsCount,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}
