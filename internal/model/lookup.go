package model

// Lookup tables for order processing. Rows are admin-managed but the
// service resolves them by semantic name, never by numeric id, so the
// names below are part of the contract and are seeded at migration.
const (
	StatusNew             = "new"
	StatusAwaitingPayment = "awaiting payment"
	StatusPaid            = "paid"

	DeliveryOrdinary = "ordinary"
	DeliveryExpress  = "express"

	PaymentOnline  = "online"
	PaymentSomeone = "someone"
)

// OrderStatus is a lookup row naming a stage of the order lifecycle.
type OrderStatus struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"type:varchar(100);unique;not null"`
}

// DeliveryType is a lookup row naming a delivery option and its price.
type DeliveryType struct {
	ID    uint    `json:"id" gorm:"primarykey"`
	Name  string  `json:"name" gorm:"type:varchar(100);unique;not null"`
	Price float64 `json:"price" gorm:"default:0"`
}

// PaymentType is a lookup row naming a payment option.
type PaymentType struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"type:varchar(100);unique;not null"`
}
