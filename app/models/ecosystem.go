package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Ecosystem is an admin-managed habitat category referenced by sightings.
type Ecosystem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Description string    `gorm:"type:varchar(255)" json:"description" validate:"max=255"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *Ecosystem) Validate() error {
	v := validator.New()

	return v.Struct(e)
}
