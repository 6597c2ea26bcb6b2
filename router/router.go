package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/canteen-app/controllers"
	"github.com/yeremiapane/canteen-app/hub"
	"github.com/yeremiapane/canteen-app/middlewares"
	"github.com/yeremiapane/canteen-app/services"
)

func SetupRouter(db *gorm.DB, h *hub.Hub) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// Registered before any route so every handler chain includes it.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	orderSvc := services.NewOrderService(db, h)

	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(orderSvc)
	wsCtrl := controllers.NewWSController(h)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Student-facing menu listing, no session required to browse.
	r.GET("/menus", menuCtrl.GetAvailableMenus)

	// Token tracking page: the viewer may only know the order id.
	r.GET("/orders/:order_id/status", orderCtrl.GetOrderStatus)

	// WebSocket endpoint; token travels in the query string.
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("", wsCtrl.Handle)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/orders", orderCtrl.PlaceOrder)
		auth.GET("/orders/my", orderCtrl.GetMyOrders)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	}

	// ----------------------------------------------------------------
	//                      STAFF ROUTES
	// ----------------------------------------------------------------
	staff := r.Group("/staff")
	staff.Use(middlewares.AuthMiddleware(), middlewares.RequireStaff())
	{
		staff.GET("/orders", orderCtrl.GetActiveOrders)
		staff.POST("/orders/:order_id/status", orderCtrl.UpdateStatus)

		staff.GET("/menus", menuCtrl.GetAllMenus)
		staff.POST("/menus", menuCtrl.CreateMenu)
		staff.PATCH("/menus/:menu_id/availability", menuCtrl.ToggleAvailability)
	}

	return r
}
