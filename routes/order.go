package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/de-scientist/Vice-Queen-Backend/controllers/order"
	"github.com/de-scientist/Vice-Queen-Backend/middleware"
)

// SetupOrderRoutes registers the order endpoints plus the websocket feed
// the admin dashboard listens on.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orderGroup := r.Group("/api")
	orderGroup.Use(middleware.Authenticate)
	{
		orderGroup.POST("/orders", orderControllers.CreateOrder(db))
		orderGroup.GET("/orders", orderControllers.GetOrders(db))
		orderGroup.GET("/orders/:id", orderControllers.GetOrderByID(db))
		orderGroup.PUT("/orders/:id", orderControllers.UpdateOrder(db))
		orderGroup.DELETE("/orders/many", orderControllers.DeleteOrders(db))
		orderGroup.DELETE("/orders/:id", orderControllers.DeleteOrder(db))

		orderGroup.GET("/order/status/:status", middleware.RequireAdmin, orderControllers.GetOrdersByStatus(db))
	}

	r.GET("/api/orders/ws", orderControllers.OrderWebSocketHandler)
}
