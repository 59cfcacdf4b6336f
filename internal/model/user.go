package model

import "time"

// User is a store account. The password column holds a bcrypt hash.
type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"type:varchar(150);unique;not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	FirstName string    `json:"first_name" gorm:"type:varchar(150)"`
	CreatedAt time.Time `json:"created_at"`

	Profile UserProfile `json:"-"`
}

// UserProfile holds contact and delivery details for a user.
type UserProfile struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	UserID   uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	FullName string `json:"fullName" gorm:"type:varchar(255)"`
	Phone    string `json:"phone" gorm:"type:varchar(15)"`
	Email    string `json:"email" gorm:"type:varchar(255)"`
	Avatar   string `json:"avatar" gorm:"type:varchar(255)"`
	City     string `json:"city" gorm:"type:varchar(100)"`
	Address  string `json:"address" gorm:"type:varchar(255)"`
}
