package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID  string    `gorm:"type:uuid;index;not null" json:"productId"`
	UserID     string    `gorm:"type:uuid;index;not null" json:"userId"`
	StarRating int       `gorm:"not null" json:"starRating"`
	Comment    string    `json:"comment"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
