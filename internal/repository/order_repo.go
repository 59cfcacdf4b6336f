package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"shop-service/internal/model"
	"shop-service/internal/service"
	shopmetrics "shop-service/prometheus"
)

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository creates the gorm order repository.
func NewOrderRepository(db *gorm.DB) service.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) InTx(ctx context.Context, fn func(service.OrderRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderRepo{db: tx})
	})
}

// Create persists the order together with any product lines attached
// to it.
func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	defer shopmetrics.TrackDBOperation("insert")(time.Now())
	return translate(r.db.WithContext(ctx).Create(order).Error)
}

func (r *orderRepo) GetByID(ctx context.Context, id uint) (*model.Order, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var order model.Order
	err := r.preloaded(ctx).First(&order, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *orderRepo) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var orders []model.Order
	err := r.preloaded(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepo) Update(ctx context.Context, order *model.Order) error {
	defer shopmetrics.TrackDBOperation("update")(time.Now())
	result := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status_id":        order.StatusID,
			"delivery_type_id": order.DeliveryTypeID,
			"payment_type_id":  order.PaymentTypeID,
			"total_cost":       order.TotalCost,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (r *orderRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Status").
		Preload("DeliveryType").
		Preload("PaymentType").
		Preload("Products").
		Preload("Products.Product").
		Preload("Products.Product.Tags")
}
