package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentMethod string

type PaymentStatus string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodMpesa      PaymentMethod = "mpesa"

	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusSuccessful PaymentStatus = "successful" // terminal, M-Pesa
	PaymentStatusCompleted  PaymentStatus = "completed"  // terminal, card
	PaymentStatusFailed     PaymentStatus = "failed"     // terminal
)

type Payment struct {
	ID              string        `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID         string        `gorm:"type:uuid;index;not null" json:"orderId"`
	PaymentMethod   PaymentMethod `gorm:"type:VARCHAR(20);not null" json:"paymentMethod"`
	Amount          float64       `gorm:"not null" json:"amount"`
	Status          PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	MpesaPaymentID  *string       `gorm:"uniqueIndex" json:"mpesaPaymentId,omitempty"`
	StripePaymentID *string       `json:"stripePaymentId,omitempty"`
	FailureReason   string        `json:"failureReason,omitempty"`
	IdempotencyKey  string        `gorm:"uniqueIndex;not null" json:"idempotencyKey"`
	PaymentDate     time.Time     `json:"paymentDate"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
