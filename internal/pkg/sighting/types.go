package sighting

// Point values granted to the beneficiary when an approved sighting is
// linked to a catalogue species.
const (
	PointsNative = 100
	PointsInvase = 150
)

// CreateSightingRequest is the typed submission payload. Any state fields a
// caller sends are ignored: submissions always start PENDING.
type CreateSightingRequest struct {
	EcosystemID       uint   `json:"ecosystem_id" validate:"required"`
	LocationName      string `json:"location_name"`
	Coordinates       string `json:"coordinates" validate:"max=100"`
	Description       string `json:"description" validate:"max=500"`
	ImagePath         string `json:"image_path" validate:"max=255"`
	Specie            string `json:"specie" validate:"max=50"`
	SightingStateID   uint   `json:"sighting_state_id"`
	SightingStateCode string `json:"sighting_state_code"`
}

// UpdateStateRequest is the typed approval-transition payload. The target
// state is resolved by id, else by case-insensitive code, else defaults to
// PENDING. SpecieID and UserID are optional; zero means absent.
type UpdateStateRequest struct {
	SightingID        uint   `json:"id"`
	SightingIDAlias   uint   `json:"sighting_id"`
	SightingStateID   uint   `json:"sighting_state_id"`
	SightingStateCode string `json:"sighting_state_code"`
	SpecieID          uint   `json:"specie_id"`
	UserID            uint   `json:"user_id"`
}

// ResolveSightingID honors both body field spellings the API accepts.
func (r UpdateStateRequest) ResolveSightingID() uint {
	if r.SightingID != 0 {
		return r.SightingID
	}
	return r.SightingIDAlias
}
