package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Variant is a named option axis on a product, e.g. "size" with
// variations ["S", "M", "L"].
type Variant struct {
	ID          string                      `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID   string                      `gorm:"type:uuid;index;not null" json:"productId"`
	VariantName string                      `gorm:"not null" json:"variantName"`
	Variations  datatypes.JSONSlice[string] `json:"variations"`
}

func (v *Variant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
