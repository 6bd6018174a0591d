package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarBrand groups cars under a manufacturer.
type CarBrand struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Image     string    `json:"image" gorm:"size:512"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relations
	Cars []Car `json:"cars,omitempty" gorm:"foreignKey:BrandID"`
}

// BeforeCreate sets UUID before creating the record.
func (b *CarBrand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
