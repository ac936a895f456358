package productControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/de-scientist/Vice-Queen-Backend/models"
)

type ProductInput struct {
	Name          string   `json:"name" binding:"required,min=1"`
	Description   string   `json:"description" binding:"required,min=1"`
	CurrentPrice  float64  `json:"currentPrice" binding:"required,gt=0"`
	PreviousPrice float64  `json:"previousPrice"`
	Stock         *int     `json:"stock" binding:"required,gte=0"`
	Images        []string `json:"images" binding:"dive,url"`
}

// POST /api/categories/:categoryId/product
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("categoryId")

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}

		product := models.Product{
			Name:          input.Name,
			Description:   input.Description,
			CurrentPrice:  input.CurrentPrice,
			PreviousPrice: input.PreviousPrice,
			Stock:         *input.Stock,
			Images:        datatypes.NewJSONSlice(input.Images),
			CategoryID:    category.ID,
		}
		if err := db.Create(&product).Error; err != nil {
			log.Printf("Failed to create product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create a product."})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// POST /api/categories/:categoryId/products — bulk create.
func CreateProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("categoryId")

		var inputs []ProductInput
		if err := c.ShouldBindJSON(&inputs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}

		products := make([]models.Product, 0, len(inputs))
		for _, in := range inputs {
			products = append(products, models.Product{
				Name:          in.Name,
				Description:   in.Description,
				CurrentPrice:  in.CurrentPrice,
				PreviousPrice: in.PreviousPrice,
				Stock:         *in.Stock,
				Images:        datatypes.NewJSONSlice(in.Images),
				CategoryID:    category.ID,
			})
		}
		if err := db.Create(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create products."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": len(products)})
	}
}

// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Reviews").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// PUT /api/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		product.Name = input.Name
		product.Description = input.Description
		product.CurrentPrice = input.CurrentPrice
		product.PreviousPrice = input.PreviousPrice
		product.Stock = *input.Stock
		product.Images = datatypes.NewJSONSlice(input.Images)
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product successfully updated", "product": product})
	}
}

// GET /api/products/filter?minPrice=&maxPrice=&category=&stock=
func FilterProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if v := c.Query("minPrice"); v != "" {
			min, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid minPrice"})
				return
			}
			query = query.Where("current_price >= ?", min)
		}
		if v := c.Query("maxPrice"); v != "" {
			max, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid maxPrice"})
				return
			}
			query = query.Where("current_price <= ?", max)
		}
		if v := c.Query("category"); v != "" {
			query = query.Joins("JOIN categories ON categories.id = products.category_id").
				Where("categories.name = ?", v)
		}
		if v := c.Query("stock"); v != "" {
			stock, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid stock"})
				return
			}
			query = query.Where("stock >= ?", stock)
		}

		var products []models.Product
		if err := query.Order("current_price asc").Order("name asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to filter products"})
			return
		}

		if len(products) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No products found matching the specified criteria."})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/search?query=
// Case-insensitive substring match over name, description, and category
// name, plus up to five prefix suggestions.
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("query")
		if len(q) < 3 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter a valid search name"})
			return
		}

		pattern := "%" + q + "%"
		var products []models.Product
		err := db.
			Joins("LEFT JOIN categories ON categories.id = products.category_id").
			Where("LOWER(products.name) LIKE LOWER(?) OR LOWER(products.description) LIKE LOWER(?) OR LOWER(categories.name) LIKE LOWER(?)",
				pattern, pattern, pattern).
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
			return
		}

		if len(products) == 0 {
			prefix := q[:3] + "%"
			var suggestions []models.Product
			db.Where("LOWER(name) LIKE LOWER(?)", prefix).Limit(5).Find(&suggestions)
			if len(suggestions) > 0 {
				names := make([]string, 0, len(suggestions))
				for _, s := range suggestions {
					names = append(names, s.Name)
				}
				c.JSON(http.StatusNotFound, gin.H{"message": "Did you mean:", "suggestions": names})
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"message": "No products found matching the search."})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

// DELETE /api/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product is deleted successfully."})
	}
}
