package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/de-scientist/Vice-Queen-Backend/controllers/user"
	"github.com/de-scientist/Vice-Queen-Backend/middleware"
)

// SetupUserRoutes registers the profile endpoints. All require a session.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/api")
	userGroup.Use(middleware.Authenticate)
	{
		userGroup.POST("/user", userControllers.CreateUser(db))
		userGroup.GET("/users", userControllers.GetAllUsers(db))
		userGroup.GET("/users/:id", userControllers.GetUser(db))
		userGroup.PUT("/user/:id", userControllers.UpdateUser(db))
		userGroup.DELETE("/user/:id", userControllers.DeleteUser(db))
	}
}
