package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/krish2434/foodcart/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Restaurant{},
		&models.Category{},
		&models.MenuItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.Review{},
	))
	return db
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func seedUser(t *testing.T, db *gorm.DB, role models.UserRole, email string) *models.User {
	t.Helper()
	user := models.User{Name: "Test " + string(role), Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// seedRestaurant creates an owner, their restaurant, and two menu items
// priced 100 and 50.
func seedRestaurant(t *testing.T, db *gorm.DB, ownerEmail string) (*models.Restaurant, []models.MenuItem) {
	t.Helper()
	owner := seedUser(t, db, models.RoleRestaurant, ownerEmail)
	restaurant := models.Restaurant{OwnerID: owner.ID, Name: "Test Kitchen", IsOpen: true}
	require.NoError(t, db.Create(&restaurant).Error)

	items := []models.MenuItem{
		{RestaurantID: restaurant.ID, Name: "Burger", Price: dec(t, "100"), IsAvailable: true},
		{RestaurantID: restaurant.ID, Name: "Fries", Price: dec(t, "50"), IsAvailable: true},
	}
	require.NoError(t, db.Create(&items).Error)
	return &restaurant, items
}

// seedOrder inserts an order directly in the given status.
func seedOrder(t *testing.T, db *gorm.DB, customerID, restaurantID uint, status models.OrderStatus) *models.Order {
	t.Helper()
	order := models.Order{
		OrderNumber:     NewOrderNumber(),
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		Status:          status,
		DeliveryAddress: "42 Test Street",
		Subtotal:        dec(t, "250"),
		DeliveryFee:     dec(t, "50"),
		Discount:        decimal.Zero,
		TotalAmount:     dec(t, "300"),
		PaymentStatus:   models.PaymentPending,
		PaymentMethod:   models.PaymentCash,
	}
	require.NoError(t, db.Create(&order).Error)
	return &order
}
