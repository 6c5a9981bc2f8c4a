package models

import "time"

// Cart holds a customer's pending menu selections. Each customer has at most
// one cart, and the cart is bound to at most one restaurant at a time: the
// restaurant is set on the first item added and unset on clear or checkout.
type Cart struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	UserID       uint        `json:"user_id" gorm:"uniqueIndex;not null"`
	RestaurantID *uint       `json:"restaurant_id"`
	Restaurant   *Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Items        []CartItem  `json:"items,omitempty" gorm:"foreignKey:CartID"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// CartItem is one line in a cart. A menu item appears at most once per cart;
// re-adding it bumps the quantity instead of creating a second line.
type CartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CartID     uint      `json:"cart_id" gorm:"not null;uniqueIndex:idx_cart_menu_item"`
	MenuItemID uint      `json:"menu_item_id" gorm:"not null;uniqueIndex:idx_cart_menu_item"`
	MenuItem   MenuItem  `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	AddedAt    time.Time `json:"added_at" gorm:"autoCreateTime"`
}
