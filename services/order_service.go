package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/krish2434/foodcart/models"
	"github.com/krish2434/foodcart/statemachine"
)

// OrderService drives the order lifecycle after checkout: role-gated status
// transitions and customer-side archival. Actor identity is always passed in
// explicitly; nothing here reads ambient session state.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// ListForCustomer returns the customer's orders, newest first, excluding
// orders the customer has archived.
func (s *OrderService) ListForCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("Items.MenuItem").Preload("Restaurant").
		Where("customer_id = ? AND is_archived_by_customer = ?", customerID, false).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// GetForCustomer returns one order with full detail, only to its customer.
func (s *OrderService) GetForCustomer(customerID, orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Items.MenuItem").Preload("Restaurant").Preload("StatusHistory").
		First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, ErrPermissionDenied
	}
	return &order, nil
}

// ListForRestaurant returns all orders of the owner's restaurant with a
// per-status summary, optionally filtered by status.
func (s *OrderService) ListForRestaurant(ownerID uint, status string) (*models.Restaurant, []models.Order, map[string]int, error) {
	var restaurant models.Restaurant
	if err := s.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, ErrRestaurantNotFound
		}
		return nil, nil, nil, err
	}

	query := s.DB.Preload("Items.MenuItem").Preload("Customer").
		Where("restaurant_id = ?", restaurant.ID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, nil, nil, err
	}

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}
	return &restaurant, orders, summary, nil
}

// UpdateStatus moves an order to target. Only the owner of the order's
// restaurant or an admin may transition; anyone else gets
// ErrPermissionDenied and the order is untouched. Reaching delivered also
// marks the payment completed (cash-on-delivery settlement).
func (s *OrderService) UpdateStatus(orderID, actorID uint, actorRole models.UserRole, target models.OrderStatus, note string) (*models.Order, error) {
	var order models.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if err := s.authorizeTransition(tx, &order, actorID, actorRole); err != nil {
			return err
		}
		if err := statemachine.CanTransition(order.Status, target); err != nil {
			return err
		}

		updates := map[string]interface{}{"status": target}
		if target == models.StatusDelivered {
			updates["payment_status"] = models.PaymentCompleted
		}
		prev := order.Status
		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}

		history := models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: prev,
			ToStatus:   target,
			ChangedBy:  actorID,
			Note:       note,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) authorizeTransition(tx *gorm.DB, order *models.Order, actorID uint, actorRole models.UserRole) error {
	if actorRole == models.RoleAdmin {
		return nil
	}
	if actorRole != models.RoleRestaurant {
		return ErrPermissionDenied
	}
	var restaurant models.Restaurant
	if err := tx.First(&restaurant, order.RestaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPermissionDenied
		}
		return err
	}
	if restaurant.OwnerID != actorID {
		return ErrPermissionDenied
	}
	return nil
}

// Archive hides a delivered or cancelled order from the customer's history.
// The restaurant owner's view of the order is unaffected.
func (s *OrderService) Archive(orderID, customerID uint) (*models.Order, error) {
	var order models.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.CustomerID != customerID {
			return ErrPermissionDenied
		}
		if !statemachine.IsTerminal(order.Status) {
			return ErrNotArchivable
		}
		return tx.Model(&order).Update("is_archived_by_customer", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
