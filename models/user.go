package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	UserID     string     `gorm:"type:uuid;primaryKey" json:"userId"`
	Firstname  string     `gorm:"not null" json:"firstname"`
	Lastname   string     `gorm:"not null" json:"lastname"`
	Email      string     `gorm:"unique;not null" json:"email"`
	Password   string     `gorm:"not null" json:"-"`
	PhoneNo    string     `json:"phoneNo"`
	Avatar     string     `json:"avatar"`
	Role       string     `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	Cart       *Cart      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	Orders     []Order    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	Reviews    []Review   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	Deliveries []Delivery `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"deliveries,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}

// PublicUser is the shape returned by auth responses and user listings; it
// never carries the password hash.
type PublicUser struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.UserID,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Email:     u.Email,
		Role:      u.Role,
	}
}
