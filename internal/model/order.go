package model

import "time"

// Order is a persisted checkout attempt. It starts as a draft with
// totalCost 0 and moves through new -> awaiting payment -> paid; the
// total is authoritative only after finalization.
type Order struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	CreatedAt      time.Time `json:"createdAt"`
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	StatusID       uint      `json:"status_id"`
	DeliveryTypeID uint      `json:"delivery_type_id"`
	PaymentTypeID  uint      `json:"payment_type_id"`
	TotalCost      float64   `json:"totalCost" gorm:"default:0"`

	Status       OrderStatus    `json:"-"`
	DeliveryType DeliveryType   `json:"-"`
	PaymentType  PaymentType    `json:"-"`
	Products     []OrderProduct `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// OrderProduct links an order to a product with a per-line count.
// Products are weakly referenced: deleting a product that appears on an
// order is rejected by the foreign key, orders never own products.
type OrderProduct struct {
	ID        uint `json:"id" gorm:"primarykey"`
	OrderID   uint `json:"order_id" gorm:"index;not null;uniqueIndex:idx_order_product"`
	ProductID uint `json:"product_id" gorm:"not null;uniqueIndex:idx_order_product"`
	Count     int  `json:"count" gorm:"default:1"`

	Product Product `json:"-"`
}
