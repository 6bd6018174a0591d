package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CarStatus represents the availability of a car.
type CarStatus string

const (
	CarStatusAvailable   CarStatus = "AVAILABLE"
	CarStatusRented      CarStatus = "RENTED"
	CarStatusMaintenance CarStatus = "MAINTENANCE"
)

// Car represents a rentable vehicle.
type Car struct {
	ID                uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name              string          `json:"name" gorm:"size:255;not null"`
	PlateNumber       string          `json:"plateNumber" gorm:"size:50;not null"`
	Status            CarStatus       `json:"status" gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
	PricePerDay       decimal.Decimal `json:"pricePerDay" gorm:"type:decimal(20,2);not null"`
	PassengerCapacity int             `json:"passengerCapacity" gorm:"not null"`
	Description       string          `json:"description" gorm:"type:text"`
	Images            []string        `json:"images" gorm:"serializer:json"`
	Features          []string        `json:"features" gorm:"serializer:json"`
	BrandID           uuid.UUID       `json:"brandId" gorm:"type:char(36);not null;index"`
	CreatedAt         time.Time       `json:"-"`
	UpdatedAt         time.Time       `json:"-"`

	// Relations
	Brand *CarBrand `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Car) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
