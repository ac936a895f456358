package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/de-scientist/Vice-Queen-Backend/controllers/auth"
)

// SetupAuthRoutes registers registration and session endpoints. These are
// the only unauthenticated write paths in the API.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/api/register", authControllers.Register(db))
	r.POST("/api/auth/login", authControllers.Login(db))
	r.POST("/api/auth/logout", authControllers.Logout())
}
