package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/de-scientist/Vice-Queen-Backend/controllers/cart"
	"github.com/de-scientist/Vice-Queen-Backend/middleware"
)

// SetupCartRoutes registers the cart endpoints. Every cart is scoped to
// the authenticated user.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/api/cart")
	cartGroup.Use(middleware.Authenticate)
	{
		cartGroup.POST("", cartControllers.CreateCart(db))
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.PUT("", cartControllers.UpdateCart(db))
		cartGroup.DELETE("", cartControllers.DeleteCart(db))

		cartGroup.POST("/add", cartControllers.AddProductToCart(db))
		cartGroup.POST("/delete", cartControllers.DeleteProductFromCart(db))
		cartGroup.PUT("/quantity/increment/:id", cartControllers.IncrementQuantity(db))
		cartGroup.PUT("/quantity/decrement/:id", cartControllers.DecrementQuantity(db))
	}
}
