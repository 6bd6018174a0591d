package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking represents a car rental over a date range.
type Booking struct {
	ID             uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	StartDate      time.Time       `json:"startDate" gorm:"not null;index"`
	EndDate        time.Time       `json:"endDate" gorm:"not null;index"`
	NumberOfDays   int             `json:"numberOfDays" gorm:"not null"`
	TotalAmount    decimal.Decimal `json:"totalAmount" gorm:"type:decimal(20,2);not null"`
	TransactionRef string          `json:"transactionRef" gorm:"size:255"` // opaque payment reference
	UserID         uuid.UUID       `json:"userId" gorm:"type:char(36);not null;index"`
	CarID          uuid.UUID       `json:"carId" gorm:"type:char(36);not null;index"`
	CreatedAt      time.Time       `json:"-"`
	UpdatedAt      time.Time       `json:"-"`

	// Relations
	Car  *Car  `json:"car,omitempty" gorm:"foreignKey:CarID"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
