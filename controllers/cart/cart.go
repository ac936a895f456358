package cartControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/de-scientist/Vice-Queen-Backend/models"
)

type CartItemInput struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type CartInput struct {
	CartItems []CartItemInput `json:"cartItems" binding:"required,dive"`
}

type CartProductInput struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

func fetchCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Preload("CartItems").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func findItem(cart *models.Cart, productID string) *models.CartItem {
	for i := range cart.CartItems {
		if cart.CartItems[i].ProductID == productID {
			return &cart.CartItems[i]
		}
	}
	return nil
}

// POST /api/cart
func CreateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var existing models.Cart
		if err := db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
			log.Printf("Cart already exists for user %s", userID)
			c.JSON(http.StatusConflict, gin.H{"message": "User already has a cart"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create cart"})
			return
		}

		// Every referenced product must exist; a dangling reference is the
		// caller's error, not ours.
		for _, item := range input.CartItems {
			var product models.Product
			if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product reference"})
				return
			}
		}

		cart := models.Cart{UserID: userID}
		for _, item := range input.CartItems {
			cart.CartItems = append(cart.CartItems, models.CartItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
		if err := db.Create(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create cart"})
			return
		}

		c.JSON(http.StatusCreated, cart)
	}
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := fetchCart(db, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// PUT /api/cart
// Full replace: the existing line items are dropped and the submitted list
// inserted, atomically.
func UpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cart, err := fetchCart(db, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		for _, item := range input.CartItems {
			var product models.Product
			if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product reference"})
				return
			}
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			for _, item := range input.CartItems {
				newItem := models.CartItem{
					CartID:    cart.ID,
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
				}
				if err := tx.Create(&newItem).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		updated, err := fetchCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /api/cart
func DeleteCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := fetchCart(db, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(cart).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart deleted successfully."})
	}
}

// POST /api/cart/add
// Adds to an existing line's quantity, or creates the line.
func AddProductToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Quantity <= 0 {
			input.Quantity = 1
		}

		cart, err := fetchCart(db, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product to cart"})
			return
		}

		if item := findItem(cart, input.ProductID); item != nil {
			if err := db.Model(item).Update("quantity", item.Quantity+input.Quantity).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product to cart"})
				return
			}
		} else {
			newItem := models.CartItem{
				CartID:    cart.ID,
				ProductID: input.ProductID,
				Quantity:  input.Quantity,
			}
			if err := db.Create(&newItem).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product to cart"})
				return
			}
		}

		updated, err := fetchCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product to cart"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// POST /api/cart/delete
func DeleteProductFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cart, err := fetchCart(db, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product from cart"})
			return
		}

		item := findItem(cart, input.ProductID)
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
			return
		}

		if err := db.Delete(item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product from cart"})
			return
		}

		updated, err := fetchCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product from cart"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// PUT /api/cart/quantity/increment/:id
func IncrementQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		productID := c.Param("id")

		cart, err := fetchCart(db, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to increment quantity for product in cart"})
			return
		}

		item := findItem(cart, productID)
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
			return
		}

		if err := db.Model(item).Update("quantity", item.Quantity+1).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to increment quantity for product in cart"})
			return
		}

		updated, err := fetchCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to increment quantity for product in cart"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// PUT /api/cart/quantity/decrement/:id
// Reaching zero removes the line; quantities are never stored as 0.
func DecrementQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		productID := c.Param("id")

		cart, err := fetchCart(db, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to decrement quantity from product in cart"})
			return
		}

		item := findItem(cart, productID)
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
			return
		}

		newQuantity := item.Quantity - 1
		if newQuantity <= 0 {
			err = db.Delete(item).Error
		} else {
			err = db.Model(item).Update("quantity", newQuantity).Error
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to decrement quantity from product in cart"})
			return
		}

		updated, err := fetchCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to decrement quantity from product in cart"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
