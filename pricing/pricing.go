// Package pricing computes line, cart and order totals. All money math uses
// exact decimals with two-decimal-place currency semantics; nothing here
// touches the database.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/krish2434/foodcart/models"
)

// deliveryFee is the flat per-order delivery charge in currency units.
const deliveryFee = 50

// DeliveryFee returns the flat delivery fee applied to every order.
func DeliveryFee() decimal.Decimal {
	return decimal.NewFromInt(deliveryFee)
}

// NoDiscount is the default discount. Extension point for a coupon system.
func NoDiscount() decimal.Decimal {
	return decimal.Zero
}

// LineTotal returns unitPrice * quantity.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// CartSubtotal sums the line totals of all cart items. Items must have their
// MenuItem loaded.
func CartSubtotal(items []models.CartItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineTotal(item.MenuItem.Price, item.Quantity))
	}
	return subtotal
}

// CartItemCount sums the quantities across all cart items.
func CartItemCount(items []models.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// OrderTotal returns subtotal + deliveryFee - discount.
func OrderTotal(subtotal, deliveryFee, discount decimal.Decimal) decimal.Decimal {
	return subtotal.Add(deliveryFee).Sub(discount)
}
