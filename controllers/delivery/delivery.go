package deliveryControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/de-scientist/Vice-Queen-Backend/models"
)

type DeliveryInput struct {
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

type DeliveryStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending shipped delivered"`
}

// POST /api/delivery/:id (order id)
// Attaches a shipping address to the caller's order; the delivery always
// starts out pending.
func CreateDelivery(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")
		userID := c.GetString("user_id")

		var input DeliveryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delivery"})
			return
		}

		delivery := models.Delivery{
			UserID:     userID,
			OrderID:    orderID,
			Address:    input.Address,
			City:       input.City,
			PostalCode: input.PostalCode,
			Country:    input.Country,
			Status:     models.DeliveryStatusPending,
		}
		if err := db.Create(&delivery).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delivery"})
			return
		}

		c.JSON(http.StatusCreated, delivery)
	}
}

// GET /api/delivery (admin)
func GetDeliveries(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var deliveries []models.Delivery
		if err := db.Find(&deliveries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deliveries"})
			return
		}
		c.JSON(http.StatusOK, deliveries)
	}
}

// GET /api/delivery/:id (admin)
func GetDeliveryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var delivery models.Delivery
		if err := db.First(&delivery, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery"})
			return
		}

		c.JSON(http.StatusOK, delivery)
	}
}

// PUT /api/delivery/:id
// Lets the owner fix the shipping address before dispatch.
func UpdateDelivery(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userID := c.GetString("user_id")

		var input DeliveryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var delivery models.Delivery
		if err := db.First(&delivery, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery"})
			return
		}

		if delivery.UserID != userID && c.GetString("role") != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own deliveries"})
			return
		}

		delivery.Address = input.Address
		delivery.City = input.City
		delivery.PostalCode = input.PostalCode
		delivery.Country = input.Country
		if err := db.Save(&delivery).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery"})
			return
		}

		c.JSON(http.StatusOK, delivery)
	}
}

// PUT /api/delivery/:id/status (admin)
func UpdateDeliveryStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input DeliveryStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var delivery models.Delivery
		if err := db.First(&delivery, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery status"})
			return
		}

		delivery.Status = input.Status
		if err := db.Save(&delivery).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery status"})
			return
		}

		c.JSON(http.StatusOK, delivery)
	}
}
