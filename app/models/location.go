package models

import "time"

// Location is a named place, deduplicated by exact (name, coordinates).
// Coordinates are free text ("lat,lng"), not a geospatial index.
type Location struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(150);not null;index:idx_locations_identity" json:"name"`
	Coordinates *string   `gorm:"type:varchar(100);index:idx_locations_identity" json:"coordinates"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
