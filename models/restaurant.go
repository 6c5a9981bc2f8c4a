package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OwnerID     uint            `json:"owner_id" gorm:"uniqueIndex;not null"`
	Owner       User            `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name        string          `json:"name" gorm:"not null"`
	Cuisine     string          `json:"cuisine"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Description string          `json:"description"`
	IsOpen      bool            `json:"is_open" gorm:"default:true"`
	Rating      decimal.Decimal `json:"rating" gorm:"type:decimal(2,1);default:0"`
	ReviewCount int             `json:"review_count" gorm:"default:0"`
	MenuItems   []MenuItem      `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
	Categories  []Category      `json:"categories,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Category groups menu items into sections, unique per restaurant
type Category struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	RestaurantID uint   `json:"restaurant_id" gorm:"not null;uniqueIndex:idx_restaurant_category"`
	Name         string `json:"name" gorm:"not null;uniqueIndex:idx_restaurant_category"`
	Description  string `json:"description"`
}

type MenuItem struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	RestaurantID    uint            `json:"restaurant_id" gorm:"not null;index"`
	CategoryID      *uint           `json:"category_id"`
	Category        *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name            string          `json:"name" gorm:"not null"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" gorm:"type:decimal(8,2);not null"`
	IsVegetarian    bool            `json:"is_vegetarian" gorm:"default:false"`
	IsAvailable     bool            `json:"is_available" gorm:"default:true"`
	PreparationTime int             `json:"preparation_time_minutes" gorm:"default:15"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
