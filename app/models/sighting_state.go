package models

import "time"

// Sighting lifecycle state codes. Static reference data seeded once.
const (
	STATE_PENDING  = "PENDING"
	STATE_ACCEPTED = "ACCEPTED"
	STATE_REJECTED = "REJECTED"
)

type SightingState struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Code      string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsTerminal reports whether no further transition is permitted out of
// this state.
func (s *SightingState) IsTerminal() bool {
	return s.Code == STATE_ACCEPTED || s.Code == STATE_REJECTED
}
