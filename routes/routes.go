package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-management/config"
	"hotel-management/controllers"
	"hotel-management/middleware"
)

// Controllers groups the handlers mounted under /api.
type Controllers struct {
	Users       *controllers.UserController
	Rooms       *controllers.RoomController
	Bookings    *controllers.BookingController
	Services    *controllers.ServiceRequestController
	Inventory   *controllers.InventoryController
	Analytics   *controllers.AnalyticsController
	Maintenance *controllers.MaintenanceController
}

func SetupRouter(cfg config.Server, log *zap.Logger, h Controllers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(log), middleware.Recovery(log))

	origins := cfg.CorsOriginList()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Hotel Management API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", h.Users.GetUsers)
			users.GET("/:id", h.Users.GetUser)
			users.POST("", h.Users.CreateUser)
			// must stay ahead of /:id
			users.PUT("/password/:id", h.Users.ChangePassword)
			users.PUT("/:id", h.Users.UpdateUser)
			users.DELETE("/:id", h.Users.DeleteUser)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", h.Rooms.GetRooms)
			rooms.GET("/guest/:guestId", h.Rooms.GetGuestRooms)
			rooms.GET("/:id", h.Rooms.GetRoom)
			rooms.POST("", h.Rooms.CreateRoom)
			rooms.PUT("/:id", h.Rooms.UpdateRoom)
			rooms.DELETE("/:id", h.Rooms.DeleteRoom)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", h.Bookings.GetBookings)
			bookings.GET("/:id", h.Bookings.GetBooking)
			bookings.POST("", h.Bookings.CreateBooking)
			bookings.PUT("/:id", h.Bookings.UpdateBooking)
			bookings.DELETE("/:id", h.Bookings.DeleteBooking)
		}

		svc := api.Group("/services")
		{
			svc.GET("", h.Services.GetServices)
			svc.GET("/:id", h.Services.GetService)
			svc.POST("", h.Services.CreateService)
			svc.PUT("/:id", h.Services.UpdateService)
			svc.DELETE("/:id", h.Services.DeleteService)
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("", h.Inventory.GetInventory)
			inventory.POST("", h.Inventory.CreateItem)
			inventory.PUT("/:id", h.Inventory.UpdateItem)
			inventory.DELETE("/:id", h.Inventory.DeleteItem)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/overview", h.Analytics.GetOverview)
			analytics.GET("/revenue", h.Analytics.GetRevenue)
			analytics.GET("/bookings", h.Analytics.GetBookingReport)
		}

		maintenance := api.Group("/maintenance")
		{
			maintenance.GET("", h.Maintenance.GetTasks)
			maintenance.GET("/room/:roomId", h.Maintenance.GetRoomTasks)
			maintenance.GET("/guest/:guestId", h.Maintenance.GetGuestTasks)
			maintenance.GET("/:id", h.Maintenance.GetTask)
			maintenance.POST("", h.Maintenance.CreateTask)
			maintenance.PUT("/:id", h.Maintenance.UpdateTask)
			maintenance.DELETE("/:id", h.Maintenance.DeleteTask)
		}
	}

	return r
}
