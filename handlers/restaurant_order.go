package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/krish2434/foodcart/config"
	"github.com/krish2434/foodcart/middleware"
	"github.com/krish2434/foodcart/models"
	"github.com/krish2434/foodcart/services"
	"github.com/krish2434/foodcart/statemachine"
)

// GetRestaurantOrders returns all orders for the restaurant owner. Customer
// archival never hides orders here.
func GetRestaurantOrders(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	restaurant, orders, summary, err := services.NewOrderService(config.DB).
		ListForRestaurant(ownerID, c.Query("status"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":    restaurant.Name,
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// UpdateOrderStatus handles the restaurant owner's state transitions
func UpdateOrderStatus(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.NewOrderService(config.DB).
		UpdateStatus(uint(orderID), ownerID, models.RoleRestaurant, req.Status, req.Note)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Order status updated",
		"order_id":          order.ID,
		"current_status":    req.Status,
		"payment_status":    order.PaymentStatus,
		"valid_next_states": statemachine.NextStatuses(req.Status),
	})
}
