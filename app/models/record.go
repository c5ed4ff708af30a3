package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record links one approved sighting to one catalogue species. It is only
// ever created by the approval workflow, never for pending or rejected
// sightings.
type Record struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UUID       string    `gorm:"type:char(36);uniqueIndex;not null" json:"uuid"`
	SightingID uint      `gorm:"not null;index" json:"sighting_id"`
	SpecieID   uint      `gorm:"not null;index" json:"specie_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Sighting Sighting `gorm:"foreignKey:SightingID" json:"-"`
	Specie   Specie   `gorm:"foreignKey:SpecieID" json:"-"`
}

func (Record) TableName() string {
	return "records"
}

// BeforeCreate assigns a UUID before the first insert.
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.UUID == "" {
		r.UUID = uuid.New().String()
	}
	return nil
}
