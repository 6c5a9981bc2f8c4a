package services

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krish2434/foodcart/models"
	"github.com/krish2434/foodcart/pricing"
)

func TestGetCreatesCartLazily(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	svc := NewCartService(db)

	cart, err := svc.Get(customer.ID)
	require.NoError(t, err)
	assert.Nil(t, cart.RestaurantID)
	assert.Empty(t, cart.Items)

	again, err := svc.Get(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)
}

func TestAddItemBindsRestaurant(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	restaurant, items := seedRestaurant(t, db, "o@test.dev")
	svc := NewCartService(db)

	cart, err := svc.AddItem(customer.ID, items[0].ID, 2)
	require.NoError(t, err)
	require.NotNil(t, cart.RestaurantID)
	assert.Equal(t, restaurant.ID, *cart.RestaurantID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	_, items := seedRestaurant(t, db, "o@test.dev")
	svc := NewCartService(db)

	_, err := svc.AddItem(customer.ID, items[0].ID, 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(customer.ID, items[0].ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1, "re-adding must not duplicate the line")
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItemRejectsCrossRestaurant(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	_, items := seedRestaurant(t, db, "o1@test.dev")
	_, otherItems := seedRestaurant(t, db, "o2@test.dev")
	svc := NewCartService(db)

	_, err := svc.AddItem(customer.ID, items[0].ID, 1)
	require.NoError(t, err)

	_, err = svc.AddItem(customer.ID, otherItems[0].ID, 1)
	assert.ErrorIs(t, err, ErrDifferentRestaurant)

	// cart unchanged
	cart, err := svc.Get(customer.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, items[0].ID, cart.Items[0].MenuItemID)
}

func TestAddItemValidation(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	_, items := seedRestaurant(t, db, "o@test.dev")
	svc := NewCartService(db)

	_, err := svc.AddItem(customer.ID, items[0].ID, 0)
	assert.ErrorIs(t, err, ErrBadQuantity)
	_, err = svc.AddItem(customer.ID, items[0].ID, -2)
	assert.ErrorIs(t, err, ErrBadQuantity)
	_, err = svc.AddItem(customer.ID, 9999, 1)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)

	require.NoError(t, db.Model(&items[1]).Update("is_available", false).Error)
	_, err = svc.AddItem(customer.ID, items[1].ID, 1)
	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestUpdateQuantity(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	_, items := seedRestaurant(t, db, "o@test.dev")
	svc := NewCartService(db)

	cart, err := svc.AddItem(customer.ID, items[0].ID, 2)
	require.NoError(t, err)
	lineID := cart.Items[0].ID

	require.NoError(t, svc.UpdateQuantity(customer.ID, lineID, 7))
	cart, _ = svc.Get(customer.ID)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestUpdateQuantityNonPositiveRemovesLine(t *testing.T) {
	for _, qty := range []int{0, -1} {
		db := newTestDB(t)
		customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
		_, items := seedRestaurant(t, db, "o@test.dev")
		svc := NewCartService(db)

		cart, err := svc.AddItem(customer.ID, items[0].ID, 2)
		require.NoError(t, err)

		require.NoError(t, svc.UpdateQuantity(customer.ID, cart.Items[0].ID, qty))
		cart, _ = svc.Get(customer.ID)
		assert.Empty(t, cart.Items, "quantity %d must delete the line", qty)
	}
}

func TestRemoveItem(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	_, items := seedRestaurant(t, db, "o@test.dev")
	svc := NewCartService(db)

	cart, err := svc.AddItem(customer.ID, items[0].ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(customer.ID, cart.Items[0].ID))
	cart, _ = svc.Get(customer.ID)
	assert.Empty(t, cart.Items)

	assert.ErrorIs(t, svc.RemoveItem(customer.ID, 9999), ErrCartItemNotFound)
}

func TestClearUnbindsRestaurant(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	_, items := seedRestaurant(t, db, "o@test.dev")
	svc := NewCartService(db)

	_, err := svc.AddItem(customer.ID, items[0].ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(customer.ID))
	cart, err := svc.Get(customer.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Nil(t, cart.RestaurantID)
}

func TestCheckout(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	restaurant, items := seedRestaurant(t, db, "o@test.dev")
	svc := NewCartService(db)

	_, err := svc.AddItem(customer.ID, items[0].ID, 2) // 2 x 100
	require.NoError(t, err)
	_, err = svc.AddItem(customer.ID, items[1].ID, 1) // 1 x 50
	require.NoError(t, err)

	order, err := svc.Checkout(customer.ID, "42 Test Street", models.PaymentCash)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD"))
	assert.Len(t, order.OrderNumber, 13)
	assert.Equal(t, models.StatusPlaced, order.Status)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.Equal(t, restaurant.ID, order.RestaurantID)
	assert.Equal(t, "42 Test Street", order.DeliveryAddress)
	assert.True(t, order.Subtotal.Equal(dec(t, "250")))
	assert.True(t, order.DeliveryFee.Equal(dec(t, "50")))
	assert.True(t, order.Discount.Equal(decimal.Zero))
	assert.True(t, order.TotalAmount.Equal(dec(t, "300")))
	require.Len(t, order.Items, 2)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), order.EstimatedDelivery, time.Minute)

	// cart fully cleared
	cart, err := svc.Get(customer.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Nil(t, cart.RestaurantID)

	// exactly one order, initial history row written
	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.EqualValues(t, 1, orderCount)

	var history []models.OrderStatusHistory
	db.Where("order_id = ?", order.ID).Find(&history)
	require.Len(t, history, 1)
	assert.Equal(t, models.StatusPlaced, history[0].ToStatus)
	assert.Equal(t, customer.ID, history[0].ChangedBy)
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	svc := NewCartService(db)

	_, err := svc.Get(customer.ID) // create empty cart
	require.NoError(t, err)

	_, err = svc.Checkout(customer.ID, "42 Test Street", models.PaymentCash)
	assert.ErrorIs(t, err, ErrEmptyCart)

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.EqualValues(t, 0, orderCount, "failed checkout must create no orders")
}

func TestCheckoutTwiceFails(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	_, items := seedRestaurant(t, db, "o@test.dev")
	svc := NewCartService(db)

	_, err := svc.AddItem(customer.ID, items[0].ID, 1)
	require.NoError(t, err)
	_, err = svc.Checkout(customer.ID, "42 Test Street", models.PaymentCash)
	require.NoError(t, err)

	_, err = svc.Checkout(customer.ID, "42 Test Street", models.PaymentCash)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutSnapshotsPrices(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	_, items := seedRestaurant(t, db, "o@test.dev")
	svc := NewCartService(db)

	_, err := svc.AddItem(customer.ID, items[0].ID, 1)
	require.NoError(t, err)
	order, err := svc.Checkout(customer.ID, "42 Test Street", models.PaymentCash)
	require.NoError(t, err)

	// raise the menu price after checkout
	require.NoError(t, db.Model(&items[0]).Update("price", dec(t, "999")).Error)

	var line models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&line).Error)
	assert.True(t, line.Price.Equal(dec(t, "100")), "order line keeps the price at order time")
	assert.True(t, line.TotalPrice.Equal(dec(t, "100")))

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.True(t, reloaded.TotalAmount.Equal(dec(t, "150")))
}

func TestCheckoutSubtotalMatchesPricing(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	_, items := seedRestaurant(t, db, "o@test.dev")
	svc := NewCartService(db)

	_, err := svc.AddItem(customer.ID, items[0].ID, 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(customer.ID, items[1].ID, 3)
	require.NoError(t, err)

	want := pricing.CartSubtotal(cart.Items)
	order, err := svc.Checkout(customer.ID, "42 Test Street", models.PaymentWallet)
	require.NoError(t, err)
	assert.True(t, order.Subtotal.Equal(want))
	assert.Equal(t, models.PaymentWallet, order.PaymentMethod)
}

func TestNewOrderNumberUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := NewOrderNumber()
		assert.False(t, seen[n], "order numbers must not repeat")
		seen[n] = true
	}
}
