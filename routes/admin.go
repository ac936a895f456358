package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/de-scientist/Vice-Queen-Backend/controllers/admin"
	"github.com/de-scientist/Vice-Queen-Backend/middleware"
)

// SetupAdminRoutes registers the dashboard endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.Authenticate, middleware.RequireAdmin)
	{
		adminGroup.GET("/dashboard", adminControllers.GetDashboardStats(db))
		adminGroup.GET("/products/export-excel", adminControllers.ExportProductsToExcel(db))
	}
}
