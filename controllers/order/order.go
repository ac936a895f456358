package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/de-scientist/Vice-Queen-Backend/models"
)

type OrderItemInput struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type OrderInput struct {
	TotalAmount float64          `json:"totalAmount" binding:"required,gt=0"`
	Status      string           `json:"status" binding:"omitempty,oneof=pending shipped delivered"`
	OrderItems  []OrderItemInput `json:"orderItems" binding:"required,dive"`
}

type DeleteOrdersInput struct {
	OrderIDs []string `json:"orderIds" binding:"required,min=1,dive,uuid"`
}

// POST /api/orders
// The total amount is taken from the client as submitted; it is not
// recomputed from the line items.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input OrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create the order"})
			return
		}
		if input.Status == "" {
			input.Status = string(models.OrderStatusPending)
		}

		// One lookup per referenced product.
		for _, item := range input.OrderItems {
			var product models.Product
			if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					log.Printf("Failed to find the product %s", item.ProductID)
					c.JSON(http.StatusBadRequest, gin.H{
						"message": fmt.Sprintf("Product with ID %s not found", item.ProductID),
					})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create the order."})
				return
			}
		}

		order := models.Order{
			UserID:      userID,
			TotalAmount: input.TotalAmount,
			Status:      models.OrderStatus(input.Status),
		}
		for _, item := range input.OrderItems {
			order.OrderItems = append(order.OrderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
		if err := db.Create(&order).Error; err != nil {
			log.Printf("Failed to create the order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create the order."})
			return
		}

		log.Printf("Succefully created the order: %s", order.ID)
		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("OrderItems").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/order/status/:status
// An empty match set is a 404 by contract, never an empty array.
func GetOrdersByStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Param("status")

		var orders []models.Order
		if err := db.
			Preload("OrderItems").
			Where("status = ?", status).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to display the status records."})
			return
		}

		if len(orders) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("No orders found with status: %s", status)})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.Preload("OrderItems").First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// PUT /api/orders/:id
// Replaces the item list wholesale and overwrites status and amount with
// whatever the caller sent. There is no transition guard on status.
func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input OrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update the order"})
			return
		}
		if input.Status == "" {
			input.Status = string(models.OrderStatusPending)
		}

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&order).Updates(map[string]interface{}{
				"total_amount": input.TotalAmount,
				"status":       input.Status,
			}).Error; err != nil {
				return err
			}
			for _, item := range input.OrderItems {
				newItem := models.OrderItem{
					OrderID:   order.ID,
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		var updated models.Order
		if err := db.Preload("OrderItems").First(&updated, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /api/orders/:id
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "The order does not exist."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete order."})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete order."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order successfully deleted."})
	}
}

// DELETE /api/orders/many
func DeleteOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DeleteOrdersInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		var matching []models.Order
		if err := db.Where("id IN ?", input.OrderIDs).Find(&matching).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete orders"})
			return
		}
		if len(matching) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "The orders do not exist."})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id IN ?", input.OrderIDs).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Where("id IN ?", input.OrderIDs).Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Deleted %d orders successfully", len(matching))})
	}
}
