package model

import (
	"time"
)

// Product represents an item sold through the store. The rating and
// reviews_count columns are derived from reviews and maintained by the
// review service; they are never edited directly.
type Product struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	Title           string    `json:"title" gorm:"type:varchar(100);not null;index"`
	Description     string    `json:"description" gorm:"type:text"`
	FullDescription string    `json:"fullDescription" gorm:"type:text"`
	Price           float64   `json:"price" gorm:"not null;default:0"`
	Date            time.Time `json:"date" gorm:"autoCreateTime"`
	Archived        bool      `json:"archived" gorm:"default:false"`
	Preview         string    `json:"preview" gorm:"type:varchar(255)"`
	CategoryID      uint      `json:"category" gorm:"index"`
	FreeDelivery    bool      `json:"freeDelivery" gorm:"default:false"`
	Available       bool      `json:"available" gorm:"default:true"`
	Count           int       `json:"count" gorm:"default:0"`
	Rating          float64   `json:"rating" gorm:"default:0"`
	ReviewsCount    int       `json:"reviewsCount" gorm:"default:0"`
	Popular         bool      `json:"popular" gorm:"default:false"`
	Limited         bool      `json:"limited" gorm:"default:false"`
	Banner          bool      `json:"banner" gorm:"default:false"`

	Tags           []Tag                   `json:"tags" gorm:"many2many:product_tags"`
	Images         []ProductImage          `json:"images" gorm:"constraint:OnDelete:CASCADE"`
	Specifications []ProductCharacteristic `json:"specifications" gorm:"constraint:OnDelete:CASCADE"`
	Reviews        []Review                `json:"reviews" gorm:"constraint:OnDelete:CASCADE"`
}

// ProductImage is an additional gallery image for a product.
type ProductImage struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	ProductID   uint   `json:"product_id" gorm:"index;not null"`
	Path        string `json:"path" gorm:"type:varchar(255);not null"`
	Description string `json:"description" gorm:"type:varchar(200)"`
}

// ProductCharacteristic is a single name/value specification row.
type ProductCharacteristic struct {
	ID        uint   `json:"id" gorm:"primarykey"`
	ProductID uint   `json:"product_id" gorm:"index;not null"`
	Name      string `json:"name" gorm:"type:varchar(100);not null"`
	Value     string `json:"value" gorm:"type:varchar(100)"`
}

// Tag labels products; products and tags are many-to-many.
type Tag struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"type:varchar(100);not null"`
}
