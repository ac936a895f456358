package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DeliveryStatusPending = "pending"

type Delivery struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"type:uuid;index;not null" json:"userId"`
	OrderID    string    `gorm:"type:uuid;index;not null" json:"orderId"`
	Address    string    `gorm:"not null" json:"address"`
	City       string    `gorm:"not null" json:"city"`
	PostalCode string    `gorm:"not null" json:"postalCode"`
	Country    string    `gorm:"not null" json:"country"`
	Status     string    `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (d *Delivery) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
