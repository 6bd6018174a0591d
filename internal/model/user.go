package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the access level of a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a registered customer or administrator.
type User struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email       string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password    string    `json:"-" gorm:"size:255;not null"` // bcrypt digest, never exposed in JSON
	FirstName   string    `json:"firstName" gorm:"size:255;not null"`
	LastName    string    `json:"lastName" gorm:"size:255;not null"`
	PhoneNumber string    `json:"phoneNumber" gorm:"size:50;not null"`
	Role        Role      `json:"role" gorm:"type:varchar(20);not null;default:'USER';index"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	// Relations
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
