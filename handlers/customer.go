package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/krish2434/foodcart/config"
	"github.com/krish2434/foodcart/middleware"
	"github.com/krish2434/foodcart/models"
	"github.com/krish2434/foodcart/services"
)

// ── Order history ───────────────────────────────────────────────────────────

// GetMyOrders returns the customer's non-archived orders, newest first
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orders, err := services.NewOrderService(config.DB).ListForCustomer(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order's full detail with history
func GetOrderDetail(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := services.NewOrderService(config.DB).GetForCustomer(userID, uint(orderID))
	if err != nil {
		serviceError(c, err)
		return
	}

	elapsed := time.Since(order.CreatedAt).Minutes()
	c.JSON(http.StatusOK, gin.H{
		"order":           order,
		"minutes_elapsed": int(elapsed),
	})
}

// ArchiveOrder hides a delivered or cancelled order from the customer's
// history. The restaurant owner still sees it.
func ArchiveOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := services.NewOrderService(config.DB).Archive(uint(orderID), userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Order removed from your history",
		"order_number": order.OrderNumber,
	})
}

// ── Reviews ─────────────────────────────────────────────────────────────────

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ReviewOrder lets the customer rate a delivered order once
func ReviewOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := services.NewReviewService(config.DB).Create(uint(orderID), userID, req.Rating, req.Comment)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for your review!",
		"review":  review,
	})
}

// ── Address book ────────────────────────────────────────────────────────────

type AddressRequest struct {
	AddressType   models.AddressType `json:"address_type" binding:"required,oneof=home work other"`
	StreetAddress string             `json:"street_address" binding:"required"`
	City          string             `json:"city" binding:"required"`
	PostalCode    string             `json:"postal_code"`
	IsDefault     bool               `json:"is_default"`
}

// ListAddresses returns the customer's saved delivery addresses
func ListAddresses(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var addresses []models.Address
	config.DB.Where("user_id = ?", userID).Order("is_default desc, created_at desc").Find(&addresses)
	c.JSON(http.StatusOK, gin.H{"count": len(addresses), "addresses": addresses})
}

// CreateAddress saves a new delivery address
func CreateAddress(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address := models.Address{
		UserID:        userID,
		AddressType:   req.AddressType,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		PostalCode:    req.PostalCode,
		IsDefault:     req.IsDefault,
	}
	if req.IsDefault {
		config.DB.Model(&models.Address{}).Where("user_id = ?", userID).Update("is_default", false)
	}
	if err := config.DB.Create(&address).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Address saved", "address": address})
}

// DeleteAddress removes a saved address. Past orders keep their copied
// delivery text and are unaffected.
func DeleteAddress(c *gin.Context) {
	userID := middleware.GetUserID(c)
	addressID := c.Param("addressId")

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", addressID, userID).First(&address).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		return
	}
	config.DB.Delete(&address)
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}
