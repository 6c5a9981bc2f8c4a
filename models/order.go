package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "placed"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// PaymentStatus tracks settlement of an order
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// PaymentMethod is how the customer chose to pay
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentWallet PaymentMethod = "wallet"
)

// Order is an immutable priced snapshot of a cart. Pricing fields are fixed
// at checkout; only status, payment status and the customer archive flag
// change afterwards. Orders are never deleted.
type Order struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	OrderNumber  string     `json:"order_number" gorm:"uniqueIndex;not null"`
	CustomerID   uint       `json:"customer_id" gorm:"not null;index"`
	Customer     User       `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null;index"`
	Restaurant   Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`

	Status          OrderStatus `json:"status" gorm:"not null;default:'placed'"`
	DeliveryAddress string      `json:"delivery_address" gorm:"not null"`

	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:decimal(8,2);not null"`
	DeliveryFee decimal.Decimal `json:"delivery_fee" gorm:"type:decimal(8,2);not null"`
	Discount    decimal.Decimal `json:"discount" gorm:"type:decimal(8,2);not null"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(8,2);not null"`

	PaymentStatus PaymentStatus `json:"payment_status" gorm:"not null;default:'pending'"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"not null;default:'cash'"`

	// Hides the order from the customer's history only. The restaurant
	// owner's view is never affected by this flag.
	IsArchivedByCustomer bool `json:"is_archived_by_customer" gorm:"default:false"`

	Items         []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`

	EstimatedDelivery time.Time `json:"estimated_delivery"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// OrderItem snapshots one cart line at checkout. Price is copied from the
// menu item at order time and never follows later menu price changes.
type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"not null;index"`
	MenuItemID uint            `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(8,2);not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(8,2);not null"`
}

// OrderStatusHistory records every status change for the audit trail
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null;index"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"` // user ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
