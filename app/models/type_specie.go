package models

import "time"

// Species classification codes.
const (
	TYPE_NATIVE = "NATIVE"
	TYPE_INVASE = "INVASE"
)

// TypeSpecie classifies catalogue species as native or invasive. Deleting a
// type with dependent species is blocked at the service layer
// (restrict-on-delete).
type TypeSpecie struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"name"`
	Code      string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"code"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Species []Specie `gorm:"foreignKey:TypeSpecieID" json:"-"`
}

func (TypeSpecie) TableName() string {
	return "type_species"
}
