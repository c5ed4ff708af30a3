package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Specie is a catalogued taxon curated by administrators. Unique per
// (type, name).
type Specie struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TypeSpecieID uint      `gorm:"not null;uniqueIndex:idx_species_type_name" json:"type_specie_id"`
	Name         string    `gorm:"type:varchar(40);not null;uniqueIndex:idx_species_type_name" json:"name" validate:"required,max=40"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	TypeSpecie TypeSpecie `gorm:"foreignKey:TypeSpecieID" json:"-"`
}

func (Specie) TableName() string {
	return "species"
}

func (s *Specie) Validate() error {
	v := validator.New()

	return v.Struct(s)
}
