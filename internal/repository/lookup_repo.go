package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"shop-service/internal/model"
	"shop-service/internal/service"
	shopmetrics "shop-service/prometheus"
)

type lookupRepo struct {
	db *gorm.DB
}

// NewLookupRepository creates the gorm lookup repository. The rows it
// resolves are seeded at migration time; a missing name here means the
// reference data was tampered with after startup.
func NewLookupRepository(db *gorm.DB) service.LookupRepository {
	return &lookupRepo{db: db}
}

func (r *lookupRepo) StatusByName(ctx context.Context, name string) (*model.OrderStatus, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var status model.OrderStatus
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&status).Error; err != nil {
		return nil, translate(err)
	}
	return &status, nil
}

func (r *lookupRepo) DeliveryByName(ctx context.Context, name string) (*model.DeliveryType, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var delivery model.DeliveryType
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&delivery).Error; err != nil {
		return nil, translate(err)
	}
	return &delivery, nil
}

func (r *lookupRepo) PaymentByName(ctx context.Context, name string) (*model.PaymentType, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var payment model.PaymentType
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&payment).Error; err != nil {
		return nil, translate(err)
	}
	return &payment, nil
}

type profileRepo struct {
	db *gorm.DB
}

// NewProfileRepository creates the gorm profile repository.
func NewProfileRepository(db *gorm.DB) service.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUser(ctx context.Context, userID uint) (*model.UserProfile, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var profile model.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}
