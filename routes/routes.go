package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/krish2434/foodcart/handlers"
	"github.com/krish2434/foodcart/middleware"
	"github.com/krish2434/foodcart/models"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Restaurants & menus (no auth needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/menu", handlers.GetMenu)
		public.GET("/restaurants/:id/reviews", handlers.GetRestaurantReviews)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		// Cart
		customer.GET("/cart", handlers.GetCart)
		customer.POST("/cart/items", handlers.AddToCart)
		customer.PUT("/cart/items/:itemId", handlers.UpdateCartItem)
		customer.DELETE("/cart/items/:itemId", handlers.RemoveCartItem)
		customer.DELETE("/cart", handlers.ClearCart)
		customer.POST("/checkout", handlers.Checkout)

		// Orders
		customer.GET("/orders", handlers.GetMyOrders)
		customer.GET("/orders/:id", handlers.GetOrderDetail)
		customer.PUT("/orders/:id/archive", handlers.ArchiveOrder)
		customer.POST("/orders/:id/review", handlers.ReviewOrder)

		// Address book
		customer.GET("/addresses", handlers.ListAddresses)
		customer.POST("/addresses", handlers.CreateAddress)
		customer.DELETE("/addresses/:addressId", handlers.DeleteAddress)
	}

	// ── Restaurant owner routes ────────────────────────────────────
	restaurant := r.Group("/api/restaurant")
	restaurant.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurant))
	{
		// Restaurant management
		restaurant.POST("/", handlers.CreateRestaurant)
		restaurant.GET("/", handlers.GetMyRestaurant)
		restaurant.PUT("/", handlers.UpdateRestaurant)

		// Categories
		restaurant.POST("/categories", handlers.AddCategory)
		restaurant.DELETE("/categories/:categoryId", handlers.DeleteCategory)

		// Menu management
		restaurant.POST("/menu", handlers.AddMenuItem)
		restaurant.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		restaurant.DELETE("/menu/:itemId", handlers.DeleteMenuItem)

		// Order management
		restaurant.GET("/orders", handlers.GetRestaurantOrders)
		restaurant.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", handlers.AdminForceOrderStatus)
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.GET("/restaurants", handlers.AdminGetAllRestaurants)
	}
}
