package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"shop-service/internal/model"
	"shop-service/internal/service"
	shopmetrics "shop-service/prometheus"
)

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository creates the gorm category repository.
func NewCategoryRepository(db *gorm.DB) service.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) ListParents(ctx context.Context) ([]model.Category, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Preload("Subcategories").
		Where("is_parent = ?", true).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

type tagRepo struct {
	db *gorm.DB
}

// NewTagRepository creates the gorm tag repository.
func NewTagRepository(db *gorm.DB) service.TagRepository {
	return &tagRepo{db: db}
}

func (r *tagRepo) ListAll(ctx context.Context) ([]model.Tag, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

type discountRepo struct {
	db *gorm.DB
}

// NewDiscountRepository creates the gorm discount repository.
func NewDiscountRepository(db *gorm.DB) service.DiscountRepository {
	return &discountRepo{db: db}
}

func (r *discountRepo) Count(ctx context.Context) (int64, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Discount{}).Count(&total).Error
	return total, err
}

func (r *discountRepo) List(ctx context.Context, offset, limit int) ([]model.Discount, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var discounts []model.Discount
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("product_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&discounts).Error
	if err != nil {
		return nil, err
	}
	return discounts, nil
}
