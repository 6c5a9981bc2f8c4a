package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/krish2434/foodcart/config"
	"github.com/krish2434/foodcart/middleware"
	"github.com/krish2434/foodcart/models"
)

// ── Restaurant Management ────────────────────────────────────────────────────

type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Cuisine     string `json:"cuisine"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// CreateRestaurant lets a restaurant-role user create their restaurant
func CreateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var existing models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You already have a restaurant"})
		return
	}

	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant := models.Restaurant{
		OwnerID:     ownerID,
		Name:        req.Name,
		Cuisine:     req.Cuisine,
		Address:     req.Address,
		City:        req.City,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
		IsOpen:      true,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
}

// GetMyRestaurant fetches the restaurant owned by the logged-in user
func GetMyRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Preload("MenuItems").Preload("Categories").
		Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// UpdateRestaurant updates restaurant details
func UpdateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow safe fields; rating and review_count are owned by the
	// rating aggregator and never directly writable.
	allowed := map[string]bool{
		"name": true, "cuisine": true, "address": true, "city": true,
		"phone": true, "email": true, "description": true, "is_open": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&restaurant).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// ── Category Management ─────────────────────────────────────────────────────

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// AddCategory creates a menu section for the owner's restaurant
func AddCategory(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Create a restaurant first"})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Category already exists for this restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category added", "category": category})
}

// DeleteCategory removes a menu section; its items keep existing uncategorized
func DeleteCategory(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	categoryID := c.Param("categoryId")

	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}

	var category models.Category
	if err := config.DB.Where("id = ? AND restaurant_id = ?", categoryID, restaurant.ID).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	config.DB.Model(&models.MenuItem{}).Where("category_id = ?", category.ID).Update("category_id", nil)
	config.DB.Delete(&category)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// ── Menu Management ─────────────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	CategoryID      *uint           `json:"category_id"`
	IsVegetarian    bool            `json:"is_vegetarian"`
	PreparationTime int             `json:"preparation_time_minutes"`
}

// AddMenuItem adds a new item to the restaurant's menu
func AddMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Create a restaurant first before adding menu items"})
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
		return
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := config.DB.Where("id = ? AND restaurant_id = ?", *req.CategoryID, restaurant.ID).First(&category).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
	}

	prep := req.PreparationTime
	if prep == 0 {
		prep = 15
	}
	item := models.MenuItem{
		RestaurantID:    restaurant.ID,
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		IsVegetarian:    req.IsVegetarian,
		IsAvailable:     true,
		PreparationTime: prep,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem updates a menu item (only by the owner). Price changes
// never touch already-placed orders: those carry snapshot prices.
func UpdateMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	itemID := c.Param("itemId")

	var item models.MenuItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	// Verify ownership
	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND owner_id = ?", item.RestaurantID, ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu item"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{
		"name": true, "description": true, "price": true, "category_id": true,
		"is_vegetarian": true, "is_available": true, "preparation_time_minutes": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			if k == "preparation_time_minutes" {
				k = "preparation_time"
			}
			update[k] = v
		}
	}
	config.DB.Model(&item).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item
func DeleteMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	itemID := c.Param("itemId")

	var item models.MenuItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND owner_id = ?", item.RestaurantID, ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu item"})
		return
	}
	config.DB.Delete(&item)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
