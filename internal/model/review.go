package model

import "time"

// Review is a customer review of a product. Reviews are immutable once
// created; there is no update path.
type Review struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	Author    string    `json:"author" gorm:"type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255)"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Rate      int       `json:"rate" gorm:"not null"`
	Date      time.Time `json:"date" gorm:"autoCreateTime"`
}

// Discount is a time-bounded sale price for exactly one product; the
// product id doubles as the primary key.
type Discount struct {
	ProductID uint      `json:"product_id" gorm:"primarykey"`
	SalePrice float64   `json:"salePrice" gorm:"not null"`
	DateFrom  time.Time `json:"dateFrom"`
	DateTo    time.Time `json:"dateTo"`

	Product Product `json:"-"`
}
