package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	ID            string                      `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string                      `gorm:"not null" json:"name"`
	Description   string                      `gorm:"not null" json:"description"`
	CurrentPrice  float64                     `gorm:"not null" json:"currentPrice"`
	PreviousPrice float64                     `json:"previousPrice"`
	Stock         int                         `json:"stock"`
	Images        datatypes.JSONSlice[string] `json:"images"`
	CategoryID    string                      `gorm:"type:uuid;index" json:"categoryId"`
	Variants      []Variant                   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	Reviews       []Review                    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
