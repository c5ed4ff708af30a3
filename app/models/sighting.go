package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sighting is a member-submitted wildlife observation. It always references
// a valid user, ecosystem, location and state; it is only ever mutated by an
// administrator through the approval workflow.
type Sighting struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UUID            string    `gorm:"type:char(36);uniqueIndex;not null" json:"uuid"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	EcosystemID     uint      `gorm:"not null;index" json:"ecosystem_id"`
	LocationID      uint      `gorm:"not null;index" json:"location_id"`
	SightingStateID uint      `gorm:"not null;index" json:"sighting_state_id"`
	Specie          string    `gorm:"type:varchar(50)" json:"specie" validate:"max=50"`
	Description     string    `gorm:"type:varchar(500)" json:"description" validate:"max=500"`
	ImagePath       string    `gorm:"type:varchar(255)" json:"image_path" validate:"max=255"`
	IsInvasive      bool      `gorm:"default:false" json:"is_invasive"`
	InvasiveZone    string    `gorm:"type:varchar(150)" json:"invasive_zone"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User          User          `gorm:"foreignKey:UserID" json:"-"`
	Ecosystem     Ecosystem     `gorm:"foreignKey:EcosystemID" json:"-"`
	Location      Location      `gorm:"foreignKey:LocationID" json:"-"`
	SightingState SightingState `gorm:"foreignKey:SightingStateID" json:"-"`
}

func (s *Sighting) Validate() error {
	v := validator.New()

	return v.Struct(s)
}

// BeforeCreate assigns a UUID before the first insert.
func (s *Sighting) BeforeCreate(tx *gorm.DB) error {
	if s.UUID == "" {
		s.UUID = uuid.New().String()
	}
	return nil
}
