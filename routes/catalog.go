package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryControllers "github.com/de-scientist/Vice-Queen-Backend/controllers/category"
	productControllers "github.com/de-scientist/Vice-Queen-Backend/controllers/product"
	variantControllers "github.com/de-scientist/Vice-Queen-Backend/controllers/variant"
	"github.com/de-scientist/Vice-Queen-Backend/middleware"
)

// SetupCatalogRoutes registers categories, products, and variants. Reads
// are public so the storefront can browse without a session; writes
// require one.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/api/categories", categoryControllers.GetCategories(db))
	r.GET("/api/categories/:id", categoryControllers.GetCategoryByID(db))
	r.GET("/api/products", productControllers.GetProducts(db))
	r.GET("/api/products/filter", productControllers.FilterProducts(db))
	r.GET("/api/products/search", productControllers.SearchProducts(db))
	r.GET("/api/products/:id", productControllers.GetProductByID(db))

	authed := r.Group("/api")
	authed.Use(middleware.Authenticate)
	{
		authed.POST("/categories", categoryControllers.CreateCategory(db))
		authed.PUT("/categories/:id", categoryControllers.UpdateCategory(db))
		authed.DELETE("/categories/:id", categoryControllers.DeleteCategory(db))

		authed.POST("/categories/:categoryId/product", productControllers.CreateProduct(db))
		authed.POST("/categories/:categoryId/products", productControllers.CreateProducts(db))
		authed.PUT("/products/:id", productControllers.UpdateProduct(db))
		authed.DELETE("/products/:id", productControllers.DeleteProduct(db))

		authed.POST("/variant/:id", variantControllers.CreateVariant(db))
		authed.GET("/variant", variantControllers.GetVariants(db))
		authed.GET("/variant/:id", variantControllers.GetVariantByID(db))
		authed.PUT("/variant/:id", variantControllers.UpdateVariant(db))
		authed.DELETE("/variant/:id", variantControllers.DeleteVariant(db))
	}
}
