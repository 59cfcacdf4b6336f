package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"shop-service/internal/catalog"
	"shop-service/internal/model"
	"shop-service/internal/service"
	shopmetrics "shop-service/prometheus"
)

type catalogRepo struct {
	db *gorm.DB
}

// NewCatalogRepository creates the gorm catalog repository. It applies
// a normalized catalog.Query to the products table; the query semantics
// themselves are documented in internal/catalog.
func NewCatalogRepository(db *gorm.DB) service.CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) Count(ctx context.Context, q catalog.Query) (int64, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var total int64
	err := r.apply(ctx, q).Model(&model.Product{}).Count(&total).Error
	return total, err
}

func (r *catalogRepo) List(ctx context.Context, q catalog.Query, offset, limit int) ([]model.Product, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var products []model.Product
	query := sorted(r.apply(ctx, q), q).Preload("Tags").Offset(offset).Limit(limit)
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// sorted appends the requested ordering plus a stable id fallback so
// pages do not shuffle between requests.
func sorted(query *gorm.DB, q catalog.Query) *gorm.DB {
	for _, s := range q.Sort {
		if s.Descending {
			query = query.Order(s.Column + " DESC")
		} else {
			query = query.Order(s.Column + " ASC")
		}
	}
	return query.Order("id ASC")
}

// apply builds the filtered queryset. The catalog only ever shows
// non-archived products.
func (r *catalogRepo) apply(ctx context.Context, q catalog.Query) *gorm.DB {
	query := r.db.WithContext(ctx).Where("archived = ?", false)

	if q.NameContains != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q.NameContains)+"%")
	}
	if q.MinPrice != nil {
		query = query.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		query = query.Where("price <= ?", *q.MaxPrice)
	}
	if q.FreeDelivery == catalog.FreeDeliveryOnly {
		query = query.Where("free_delivery = ?", true)
	}
	if q.Available != nil {
		query = query.Where("available = ?", *q.Available)
	}
	if len(q.TagIDs) > 0 {
		query = query.Where(
			"id IN (SELECT product_id FROM product_tags WHERE tag_id IN ?)",
			q.TagIDs,
		)
	}
	return query
}
