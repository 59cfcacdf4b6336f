package model

// Cart is the per-user pre-checkout collection. Exactly one cart exists
// per user and it is created lazily on the first basket write.
type Cart struct {
	ID     uint `json:"id" gorm:"primarykey"`
	UserID uint `json:"user_id" gorm:"uniqueIndex;not null"`

	Items []CartItem `json:"items" gorm:"constraint:OnDelete:CASCADE"`
}

// CartItem holds the count of one product in one cart. A count of zero
// is never persisted; the row is deleted instead.
type CartItem struct {
	ID        uint `json:"id" gorm:"primarykey"`
	CartID    uint `json:"cart_id" gorm:"index;not null;uniqueIndex:idx_cart_product"`
	ProductID uint `json:"product_id" gorm:"not null;uniqueIndex:idx_cart_product"`
	Count     int  `json:"count" gorm:"default:1"`

	Product Product `json:"-"`
}
