package models

import "time"

// Review is a customer's rating of a delivered order. At most one review may
// exist per order, and only the ordering customer may write it.
type Review struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	OrderID      uint       `json:"order_id" gorm:"uniqueIndex:idx_order_user;not null"`
	Order        Order      `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null;index"`
	Restaurant   Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	UserID       uint       `json:"user_id" gorm:"uniqueIndex:idx_order_user;not null"`
	User         User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Rating       int        `json:"rating" gorm:"not null"` // 1..5
	Comment      string     `json:"comment"`
	CreatedAt    time.Time  `json:"created_at"`
}
