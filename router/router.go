package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food-delivery-backend/controllers"
	"food-delivery-backend/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	authCtrl := controllers.NewAuthController(db)
	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	driverCtrl := controllers.NewDriverController(db)
	deliveryCtrl := controllers.NewDeliveryController(db)
	reviewCtrl := controllers.NewReviewController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	loginLimiter := middlewares.NewLoginRateLimiter(10)
	public := r.Group("/")
	public.Use(loginLimiter.Limit())
	{
		public.POST("/register", authCtrl.Register)
		public.POST("/login", authCtrl.Login)
		public.POST("/token/refresh", authCtrl.Refresh)
	}

	// Browsing restaurants and menus requires no account.
	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)
	r.GET("/restaurants/:restaurant_id/menus", restaurantCtrl.GetRestaurantMenus)
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)
		auth.PUT("/profile", userCtrl.UpdateProfile)

		auth.GET("/orders", orderCtrl.GetAllOrders)
		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		auth.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)
		auth.GET("/orders/:order_id/items", orderCtrl.GetOrderItems)
		auth.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

		auth.GET("/payments", paymentCtrl.GetAllPayments)
		auth.POST("/payments", paymentCtrl.CreatePayment)
		auth.GET("/payments/:payment_id", paymentCtrl.GetPaymentByID)
		auth.POST("/payments/:payment_id/process_payment", paymentCtrl.ProcessPayment)

		auth.GET("/drivers", driverCtrl.GetAllDrivers)
		auth.GET("/drivers/available", driverCtrl.GetAvailableDrivers)
		auth.PATCH("/drivers/:driver_id/availability", driverCtrl.UpdateDriverAvailability)

		auth.GET("/deliveries", deliveryCtrl.GetAllDeliveries)
		auth.POST("/deliveries", deliveryCtrl.CreateDelivery)
		auth.GET("/deliveries/:delivery_id", deliveryCtrl.GetDeliveryByID)
		auth.PATCH("/deliveries/:delivery_id/update_status", deliveryCtrl.UpdateDeliveryStatus)

		auth.GET("/reviews", reviewCtrl.GetAllReviews)
		auth.POST("/reviews", reviewCtrl.CreateReview)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.POST("/restaurants", restaurantCtrl.CreateRestaurant)
		admin.POST("/menus", menuCtrl.CreateMenu)
		admin.POST("/drivers", driverCtrl.CreateDriver)
		admin.DELETE("/drivers/:driver_id", driverCtrl.DeleteDriver)
		admin.PATCH("/deliveries/:delivery_id/assign_driver", deliveryCtrl.AssignDriver)
		admin.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)
		admin.GET("/users", userCtrl.GetAllUsers)
		admin.DELETE("/users/:user_id", userCtrl.DeactivateUser)
	}

	return r
}
