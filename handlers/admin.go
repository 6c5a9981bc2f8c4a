package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/krish2434/foodcart/config"
	"github.com/krish2434/foodcart/middleware"
	"github.com/krish2434/foodcart/models"
	"github.com/krish2434/foodcart/services"
)

// AdminGetAllOrders returns all orders with full detail — admin only
func AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items.MenuItem").
		Preload("Customer").Preload("Restaurant").Preload("StatusHistory")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}

	query.Order("created_at desc").Find(&orders)

	// Admin dashboard: aggregate by status
	summary := map[string]int{}
	totalRevenue := decimal.Zero
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusDelivered {
			totalRevenue = totalRevenue.Add(o.TotalAmount)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}

// AdminGetAllUsers returns all users — admin only
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminGetAllRestaurants returns all restaurants — admin only
func AdminGetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	config.DB.Preload("Owner").Preload("MenuItems").Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// AdminForceOrderStatus lets an admin transition any order. Goes through the
// same state machine as owners, so terminal and unknown statuses still fail.
func AdminForceOrderStatus(c *gin.Context) {
	adminID := middleware.GetUserID(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
		Reason string             `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.NewOrderService(config.DB).
		UpdateStatus(uint(orderID), adminID, models.RoleAdmin, req.Status, "[ADMIN] "+req.Reason)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Order status updated by admin",
		"order_id":   order.ID,
		"new_status": req.Status,
	})
}
