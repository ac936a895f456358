package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	deliveryControllers "github.com/de-scientist/Vice-Queen-Backend/controllers/delivery"
	"github.com/de-scientist/Vice-Queen-Backend/middleware"
)

// SetupDeliveryRoutes registers the delivery endpoints. Listing and status
// changes are back-office operations, so they sit behind the admin gate.
func SetupDeliveryRoutes(r *gin.Engine, db *gorm.DB) {
	deliveryGroup := r.Group("/api/delivery")
	deliveryGroup.Use(middleware.Authenticate)
	{
		deliveryGroup.POST("/:id", deliveryControllers.CreateDelivery(db))
		deliveryGroup.PUT("/:id", deliveryControllers.UpdateDelivery(db))

		deliveryGroup.GET("", middleware.RequireAdmin, deliveryControllers.GetDeliveries(db))
		deliveryGroup.GET("/:id", middleware.RequireAdmin, deliveryControllers.GetDeliveryByID(db))
		deliveryGroup.PUT("/:id/status", middleware.RequireAdmin, deliveryControllers.UpdateDeliveryStatus(db))
	}
}
