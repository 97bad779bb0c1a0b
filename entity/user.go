package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Role     Role   `gorm:"not null;default:customer" json:"role"`

	// Approved gates login for admin accounts only; super admins are
	// born approved, customers are never checked.
	Approved bool `gorm:"not null;default:false" json:"approved"`

	Avatar Image `gorm:"embedded;embeddedPrefix:avatar_" json:"avatar"`

	// set only for admin accounts, in the same transaction that creates
	// the restaurant
	RestaurantID *uint       `json:"-"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant"`
}
