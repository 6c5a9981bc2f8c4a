package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/krish2434/foodcart/config"
	"github.com/krish2434/foodcart/middleware"
	"github.com/krish2434/foodcart/models"
	"github.com/krish2434/foodcart/pricing"
	"github.com/krish2434/foodcart/services"
)

type AddToCartRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	DeliveryAddress string               `json:"delivery_address" binding:"required"`
	PaymentMethod   models.PaymentMethod `json:"payment_method" binding:"required,oneof=cash card wallet"`
}

// GetCart returns the customer's cart with totals, creating it on first use
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	cart, err := services.NewCartService(config.DB).Get(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart":       cart,
		"subtotal":   pricing.CartSubtotal(cart.Items),
		"item_count": pricing.CartItemCount(cart.Items),
	})
}

// AddToCart adds a menu item to the cart, binding the cart to the item's
// restaurant on first add
func AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := services.NewCartService(config.DB).AddItem(userID, req.MenuItemID, req.Quantity)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Item added to cart",
		"cart":       cart,
		"subtotal":   pricing.CartSubtotal(cart.Items),
		"item_count": pricing.CartItemCount(cart.Items),
	})
}

// UpdateCartItem sets a line's quantity; zero or below removes the line
func UpdateCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.NewCartService(config.DB).UpdateQuantity(userID, uint(itemID), req.Quantity); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

// RemoveCartItem deletes a line from the cart
func RemoveCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
		return
	}

	if err := services.NewCartService(config.DB).RemoveItem(userID, uint(itemID)); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

// ClearCart removes every line and unbinds the restaurant
func ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if err := services.NewCartService(config.DB).Clear(userID); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// Checkout converts the cart into an order
func Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.NewCartService(config.DB).Checkout(userID, req.DeliveryAddress, req.PaymentMethod)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":            "Order placed successfully",
		"order":              order,
		"order_number":       order.OrderNumber,
		"estimated_delivery": order.EstimatedDelivery,
	})
}
