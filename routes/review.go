package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	reviewControllers "github.com/de-scientist/Vice-Queen-Backend/controllers/review"
	"github.com/de-scientist/Vice-Queen-Backend/middleware"
)

// SetupReviewRoutes registers the review endpoints.
func SetupReviewRoutes(r *gin.Engine, db *gorm.DB) {
	reviewGroup := r.Group("/api")
	reviewGroup.Use(middleware.Authenticate)
	{
		reviewGroup.POST("/review/:id", reviewControllers.CreateReview(db))
		reviewGroup.GET("/reviews", reviewControllers.GetReviews(db))
		reviewGroup.GET("/review/:id", reviewControllers.GetReviewByID(db))
		reviewGroup.PUT("/review/:id", reviewControllers.UpdateReview(db))
		reviewGroup.DELETE("/review/:id", reviewControllers.DeleteReview(db))
	}
}
