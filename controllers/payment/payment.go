package paymentControllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/de-scientist/Vice-Queen-Backend/models"
)

var phonePattern = regexp.MustCompile(`^254\d{9}$`)

type PaymentInput struct {
	OrderID         string  `json:"orderId" binding:"required,uuid"`
	PaymentMethod   string  `json:"paymentMethod" binding:"required,oneof=credit_card mpesa"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	PhoneNo         string  `json:"phoneNo"`
	PaymentMethodID string  `json:"paymentMethodId"`
	IdempotencyKey  string  `json:"idempotencyKey" binding:"required"`
}

// MpesaCallbackBody is the provider's STK result envelope.
type MpesaCallbackBody struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

// POST /api/payments
// A repeated idempotency key returns the payment it already produced and
// performs no provider call.
func CreatePayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var existing models.Payment
		err := db.Where("idempotency_key = ?", input.IdempotencyKey).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusOK, existing)
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create payment"})
			return
		}

		switch models.PaymentMethod(input.PaymentMethod) {
		case models.PaymentMethodMpesa:
			createMpesaPayment(c, db, input)
		default:
			createCardPayment(c, db, input)
		}
	}
}

// M-Pesa: only an accepted push produces a payment row. A rejected push
// leaves no record, so there is no audit trail for it.
func createMpesaPayment(c *gin.Context, db *gorm.DB, input PaymentInput) {
	if !phonePattern.MatchString(input.PhoneNo) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Phone number must start with 254 followed by 9 digits"})
		return
	}

	token, err := generateMpesaToken(c.Request.Context())
	if err != nil {
		log.Printf("Failed to create payment: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to create payment", "error": err.Error()})
		return
	}

	pushResp, err := initiateMpesaPayment(c.Request.Context(), input.PhoneNo, input.Amount, token)
	if err != nil {
		log.Printf("Failed to create payment: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to create payment", "error": err.Error()})
		return
	}
	if pushResp.ResponseCode != "0" {
		log.Printf("Mpesa rejected STK push: %s", pushResp.ResponseDescription)
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to create payment", "error": pushResp.ResponseDescription})
		return
	}

	payment := models.Payment{
		OrderID:        input.OrderID,
		PaymentMethod:  models.PaymentMethodMpesa,
		Amount:         input.Amount,
		Status:         models.PaymentStatusPending,
		MpesaPaymentID: &pushResp.CheckoutRequestID,
		IdempotencyKey: input.IdempotencyKey,
		PaymentDate:    time.Now(),
	}
	if err := db.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create payment"})
		return
	}

	log.Printf("Payment created successfully with ID: %s", payment.ID)
	c.JSON(http.StatusCreated, payment)
}

// Card: a pending row is written only after the intent exists, then the
// confirmation result drives the terminal status.
func createCardPayment(c *gin.Context, db *gorm.DB, input PaymentInput) {
	intent, err := createPaymentIntent(c.Request.Context(), input.Amount, "usd")
	if err != nil {
		log.Printf("Failed to create payment intent: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create payment", "error": err.Error()})
		return
	}

	payment := models.Payment{
		OrderID:         input.OrderID,
		PaymentMethod:   models.PaymentMethodCreditCard,
		Amount:          input.Amount,
		Status:          models.PaymentStatusPending,
		StripePaymentID: &intent.ID,
		IdempotencyKey:  input.IdempotencyKey,
		PaymentDate:     time.Now(),
	}
	if err := db.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create payment"})
		return
	}
	log.Printf("Payment created successfully with ID: %s", payment.ID)

	confirmed, err := confirmPaymentIntent(c.Request.Context(), intent.ID, input.PaymentMethodID)
	if err == nil && confirmed.Status == "succeeded" {
		payment.Status = models.PaymentStatusCompleted
	} else {
		payment.Status = models.PaymentStatusFailed
		if err != nil {
			payment.FailureReason = err.Error()
		} else {
			payment.FailureReason = "payment confirmation failed: " + confirmed.Status
		}
	}
	if err := db.Save(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create payment"})
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// POST /api/payments/mpesa-callback
// The raw body is HMAC-verified before any state changes; an unverifiable
// caller cannot flip a payment's status.
func MpesaCallback(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to process callback"})
			return
		}

		if !verifyCallbackSignature(body, c.GetHeader(SignatureHeader)) {
			log.Println("Rejected mpesa callback with a bad signature")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid callback signature"})
			return
		}

		var callback MpesaCallbackBody
		if err := json.Unmarshal(body, &callback); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to process callback"})
			return
		}
		stk := callback.Body.StkCallback
		log.Printf("Mpesa callback received for CheckoutRequestID: %s", stk.CheckoutRequestID)

		var payment models.Payment
		if err := db.Where("mpesa_payment_id = ?", stk.CheckoutRequestID).First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process callback"})
			return
		}

		if stk.ResultCode == 0 {
			payment.Status = models.PaymentStatusSuccessful
		} else {
			payment.Status = models.PaymentStatusFailed
			payment.FailureReason = stk.ResultDesc
		}
		if err := db.Save(&payment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process callback"})
			return
		}

		log.Printf("Payment with CheckoutRequestID: %s updated to %s", stk.CheckoutRequestID, payment.Status)
		c.JSON(http.StatusOK, gin.H{"message": "Callback processed successfully"})
	}
}

// GET /api/payments
func GetPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payments []models.Payment
		if err := db.Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}
		c.JSON(http.StatusOK, payments)
	}
}

// GET /api/payments/:id
func GetPaymentByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var payment models.Payment
		if err := db.First(&payment, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment"})
			return
		}

		c.JSON(http.StatusOK, payment)
	}
}
