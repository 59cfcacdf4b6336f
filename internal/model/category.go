package model

// Category groups products. Categories form a tree through a self
// referencing many-to-many link; roots are flagged with IsParent.
type Category struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Title       string `json:"title" gorm:"type:varchar(100);unique;not null"`
	Description string `json:"description" gorm:"type:text"`
	ImagePath   string `json:"image_path" gorm:"type:varchar(255)"`
	IsParent    bool   `json:"is_parent" gorm:"default:false"`

	Subcategories []Category `json:"subcategories" gorm:"many2many:category_subcategories;joinForeignKey:parent_id;joinReferences:child_id"`
}
