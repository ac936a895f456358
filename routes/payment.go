package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/de-scientist/Vice-Queen-Backend/controllers/payment"
	"github.com/de-scientist/Vice-Queen-Backend/middleware"
)

// SetupPaymentRoutes registers the payment endpoints. The mpesa callback
// stays outside the session middleware: the provider authenticates with
// the HMAC signature, not a token.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	paymentGroup := r.Group("/api/payments")
	paymentGroup.Use(middleware.Authenticate)
	{
		paymentGroup.POST("", paymentControllers.CreatePayment(db))
		paymentGroup.GET("", paymentControllers.GetPayments(db))
		paymentGroup.GET("/:id", paymentControllers.GetPaymentByID(db))
	}

	r.POST("/api/payments/mpesa-callback", paymentControllers.MpesaCallback(db))
}
