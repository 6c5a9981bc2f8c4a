package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/krish2434/foodcart/config"
	"github.com/krish2434/foodcart/models"
	"github.com/krish2434/foodcart/services"
	"github.com/krish2434/foodcart/statemachine"
)

// ListRestaurants returns all restaurants, best rated first (public)
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := config.DB.Order("rating desc")

	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("cuisine LIKE ?", "%"+cuisine+"%")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if open := c.Query("open"); open == "true" {
		query = query.Where("is_open = ?", true)
	}
	if city := c.Query("city"); city != "" {
		query = query.Where("city LIKE ?", "%"+city+"%")
	}

	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant with its menu and categories
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("MenuItems").Preload("Categories").
		First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMenu returns the menu for a specific restaurant (public)
func GetMenu(c *gin.Context) {
	restaurantID := c.Param("id")
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var items []models.MenuItem
	query := config.DB.Preload("Category").Where("restaurant_id = ?", restaurantID)

	if category := c.Query("category_id"); category != "" {
		query = query.Where("category_id = ?", category)
	}
	if veg := c.Query("vegetarian"); veg == "true" {
		query = query.Where("is_vegetarian = ?", true)
	}
	if available := c.Query("available"); available == "true" {
		query = query.Where("is_available = ?", true)
	}
	query.Find(&items)

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(items),
		"menu":       items,
	})
}

// GetRestaurantReviews lists a restaurant's reviews with its aggregate (public)
func GetRestaurantReviews(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	reviews, err := services.NewReviewService(config.DB).ListForRestaurant(uint(restaurantID))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":   restaurant.Name,
		"rating":       restaurant.Rating,
		"review_count": restaurant.ReviewCount,
		"reviews":      reviews,
	})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	transitions := []gin.H{}
	for _, from := range statemachine.AllStatuses() {
		for _, to := range statemachine.NextStatuses(from) {
			transitions = append(transitions, gin.H{"from": from, "to": to, "actor": "restaurant owner or admin"})
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"statuses":        statemachine.AllStatuses(),
		"state_machine":   transitions,
		"terminal_states": []models.OrderStatus{models.StatusDelivered, models.StatusCancelled},
		"description":     "Order lifecycle state machine",
	})
}
