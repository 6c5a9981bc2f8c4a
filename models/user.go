package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer   UserRole = "customer"
	RoleRestaurant UserRole = "restaurant"
	RoleAdmin      UserRole = "admin"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'customer'"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AddressType labels a saved delivery address
type AddressType string

const (
	AddressHome  AddressType = "home"
	AddressWork  AddressType = "work"
	AddressOther AddressType = "other"
)

// Address is a saved delivery location in a customer's address book.
// Checkout copies the chosen address as free text, so editing or deleting
// a saved address never touches past orders.
type Address struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	UserID        uint        `json:"user_id" gorm:"not null;index"`
	AddressType   AddressType `json:"address_type" gorm:"not null;default:'home'"`
	StreetAddress string      `json:"street_address" gorm:"not null"`
	City          string      `json:"city" gorm:"not null"`
	PostalCode    string      `json:"postal_code"`
	IsDefault     bool        `json:"is_default" gorm:"default:false"`
	CreatedAt     time.Time   `json:"created_at"`
}
