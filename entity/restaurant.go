package entity

import (
	"gorm.io/gorm"
)

const (
	RestaurantStatusPending  = "pending"
	RestaurantStatusApproved = "approved"
	RestaurantStatusRejected = "rejected" // declared, nothing writes it yet
)

type Restaurant struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`

	OwnerID uint `gorm:"not null" json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	// Approved mirrors Status == "approved"; both move together inside
	// RestaurantRepository.ApproveWithOwner.
	Status   string `gorm:"not null;default:pending" json:"status"`
	Approved bool   `gorm:"not null;default:false" json:"approved"`

	Logo Image `gorm:"embedded;embeddedPrefix:logo_" json:"logo"`
}
