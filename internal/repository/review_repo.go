package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"shop-service/internal/model"
	"shop-service/internal/service"
	shopmetrics "shop-service/prometheus"
)

type reviewRepo struct {
	db *gorm.DB
}

// NewReviewRepository creates the gorm review repository.
func NewReviewRepository(db *gorm.DB) service.ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(ctx context.Context, review *model.Review) error {
	defer shopmetrics.TrackDBOperation("insert")(time.Now())
	return translate(r.db.WithContext(ctx).Create(review).Error)
}

func (r *reviewRepo) ListByProduct(ctx context.Context, productID uint) ([]model.Review, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("date ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepo) Stats(ctx context.Context, productID uint) (int, float64, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var stats struct {
		Count int
		Avg   float64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rate), 0) AS avg").
		Where("product_id = ?", productID).
		Scan(&stats).Error
	if err != nil {
		return 0, 0, err
	}
	return stats.Count, stats.Avg, nil
}
