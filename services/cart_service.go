package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/krish2434/foodcart/models"
	"github.com/krish2434/foodcart/pricing"
)

// estimatedLeadTime is added to the checkout time to produce the order's
// estimated delivery timestamp.
const estimatedLeadTime = 30 * time.Minute

// CartService owns all cart mutations and the cart-to-order transition.
// Every mutation runs inside a transaction so a request either fully applies
// or leaves no trace.
type CartService struct {
	DB *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{DB: db}
}

// Get returns the customer's cart, creating an empty one on first access.
func (s *CartService) Get(userID uint) (*models.Cart, error) {
	return getOrCreateCart(s.DB, userID)
}

// AddItem puts quantity of a menu item into the customer's cart. The first
// add binds the cart to the item's restaurant; adding from a different
// restaurant fails with ErrDifferentRestaurant and changes nothing. Re-adding
// an item accumulates onto the existing line.
func (s *CartService) AddItem(userID, menuItemID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrBadQuantity
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var item models.MenuItem
		if err := tx.First(&item, menuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuItemNotFound
			}
			return err
		}
		if !item.IsAvailable {
			return ErrItemUnavailable
		}

		cart, err := getOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		switch {
		case cart.RestaurantID == nil:
			if err := tx.Model(cart).Update("restaurant_id", item.RestaurantID).Error; err != nil {
				return err
			}
		case *cart.RestaurantID != item.RestaurantID:
			return ErrDifferentRestaurant
		}

		var line models.CartItem
		err = tx.Where("cart_id = ? AND menu_item_id = ?", cart.ID, item.ID).First(&line).Error
		switch {
		case err == nil:
			return tx.Model(&line).Update("quantity", line.Quantity+quantity).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = models.CartItem{CartID: cart.ID, MenuItemID: item.ID, Quantity: quantity}
			return tx.Create(&line).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// UpdateQuantity sets a line's quantity. A quantity of zero or below deletes
// the line instead of leaving a zero-quantity record.
func (s *CartService) UpdateQuantity(userID, cartItemID uint, quantity int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		line, err := findCartLine(tx, userID, cartItemID)
		if err != nil {
			return err
		}
		if quantity <= 0 {
			return tx.Delete(line).Error
		}
		return tx.Model(line).Update("quantity", quantity).Error
	})
}

// RemoveItem deletes a line from the customer's cart.
func (s *CartService) RemoveItem(userID, cartItemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		line, err := findCartLine(tx, userID, cartItemID)
		if err != nil {
			return err
		}
		return tx.Delete(line).Error
	})
}

// Clear deletes every line and unbinds the restaurant.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := findCart(tx, userID)
		if err != nil {
			return err
		}
		return clearCart(tx, cart)
	})
}

// Checkout converts the cart into an order atomically: price the lines,
// create the order with a fresh order number and snapshot lines, record the
// initial status history, then clear the cart. An empty cart fails with
// ErrEmptyCart. Either all of it happens or none of it does.
func (s *CartService) Checkout(userID uint, deliveryAddress string, method models.PaymentMethod) (*models.Order, error) {
	var order models.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := findCart(tx, userID)
		if err != nil {
			return err
		}
		if err := tx.Preload("MenuItem").Where("cart_id = ?", cart.ID).
			Order("id asc").Find(&cart.Items).Error; err != nil {
			return err
		}
		if len(cart.Items) == 0 || cart.RestaurantID == nil {
			return ErrEmptyCart
		}

		subtotal := pricing.CartSubtotal(cart.Items)
		fee := pricing.DeliveryFee()
		discount := pricing.NoDiscount()

		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			items = append(items, models.OrderItem{
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				Price:      line.MenuItem.Price,
				TotalPrice: pricing.LineTotal(line.MenuItem.Price, line.Quantity),
			})
		}

		order = models.Order{
			OrderNumber:       NewOrderNumber(),
			CustomerID:        userID,
			RestaurantID:      *cart.RestaurantID,
			Status:            models.StatusPlaced,
			DeliveryAddress:   deliveryAddress,
			Subtotal:          subtotal,
			DeliveryFee:       fee,
			Discount:          discount,
			TotalAmount:       pricing.OrderTotal(subtotal, fee, discount),
			PaymentStatus:     models.PaymentPending,
			PaymentMethod:     method,
			EstimatedDelivery: time.Now().Add(estimatedLeadTime),
			Items:             items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		history := models.OrderStatusHistory{
			OrderID:   order.ID,
			ToStatus:  models.StatusPlaced,
			ChangedBy: userID,
			Note:      "Order placed at checkout",
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		return clearCart(tx, cart)
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Items.MenuItem").Preload("Restaurant").
		First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// NewOrderNumber generates an opaque unique order number. Never derived from
// mutable state, never reused.
func NewOrderNumber() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD" + strings.ToUpper(hex[:10])
}

func getOrCreateCart(tx *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := tx.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id asc") }).
		Preload("Items.MenuItem").Preload("Restaurant").
		Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := tx.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func findCart(tx *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func findCartLine(tx *gorm.DB, userID, cartItemID uint) (*models.CartItem, error) {
	cart, err := findCart(tx, userID)
	if err != nil {
		return nil, err
	}
	var line models.CartItem
	if err := tx.Where("id = ? AND cart_id = ?", cartItemID, cart.ID).First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	return &line, nil
}

func clearCart(tx *gorm.DB, cart *models.Cart) error {
	if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(cart).Update("restaurant_id", nil).Error
}
