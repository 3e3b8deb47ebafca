package routes

import (
	"log"

	"food-delivery/config"
	"food-delivery/controllers"
	"food-delivery/middleware"
	"food-delivery/models"
	"food-delivery/repositories"
	"food-delivery/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository()
	restaurantRepo := repositories.NewRestaurantRepository()
	menuRepo := repositories.NewMenuRepository()
	orderRepo := repositories.NewOrderRepository()

	var mailer services.Mailer
	if emailService, err := models.NewEmailService(); err != nil {
		log.Println("Email disabled:", err)
	} else {
		mailer = emailService
	}

	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo))
	restaurantCtrl := controllers.NewRestaurantController(
		services.NewRestaurantService(restaurantRepo, config.RedisClient))
	menuCtrl := controllers.NewMenuController(menuRepo, restaurantRepo)
	orderCtrl := controllers.NewOrderController(
		services.NewOrderService(orderRepo, menuRepo, mailer))
	cartCtrl := controllers.NewCartController(menuRepo)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.Logout)

	router.GET("/restaurants", restaurantCtrl.GetAll)
	router.GET("/restaurants/:id", restaurantCtrl.GetByID)
	router.GET("/menu/restaurant/:id", menuCtrl.GetByRestaurant)
	router.GET("/menu/:id", menuCtrl.GetByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)

		auth.GET("/cart", cartCtrl.Get)
		auth.DELETE("/cart", cartCtrl.Clear)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		auth.DELETE("/cart/items/:id", cartCtrl.RemoveItem)

		auth.POST("/orders", orderCtrl.Create)
		auth.GET("/orders/my-orders", orderCtrl.MyOrders)
		auth.GET("/orders/:id", orderCtrl.GetByID)
		auth.PUT("/orders/:id/cancel", orderCtrl.Cancel)
	}

	admin := router.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/restaurants", restaurantCtrl.Create)
		admin.PUT("/restaurants/:id", restaurantCtrl.Update)
		admin.DELETE("/restaurants/:id", restaurantCtrl.Delete)
		admin.POST("/restaurants/:id/image", restaurantCtrl.UploadImage)

		admin.POST("/menu", menuCtrl.Create)
		admin.PUT("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)
		admin.POST("/menu/:id/image", menuCtrl.UploadImage)

		admin.GET("/orders", orderCtrl.GetAll)
		admin.PUT("/orders/:id/status", orderCtrl.UpdateStatus)
	}

	router.Static("/uploads", "./uploads")
}
