package viewmodel

import (
	"time"

	"github.com/ecoexplore/EcoExplore/app/models"
	"github.com/ecoexplore/EcoExplore/internal/pkg/contribution"
)

// SightingResponse is the JSON shape for a sighting with its related names
// resolved for display.
type SightingResponse struct {
	ID                          uint      `json:"id"`
	UUID                        string    `json:"uuid"`
	UserID                      uint      `json:"user_id"`
	UserName                    string    `json:"user_name"`
	EcosystemID                 uint      `json:"ecosystem_id"`
	EcosystemName               string    `json:"ecosystem_name"`
	LocationID                  uint      `json:"location_id"`
	SightingStateID             uint      `json:"sighting_state_id"`
	SightingStateName           string    `json:"sighting_state_name"`
	SightingLocation            string    `json:"sighting_location"`
	SightingLocationCoordinates string    `json:"sighting_location_coordinates"`
	Description                 string    `json:"description"`
	ImagePath                   string    `json:"image_path,omitempty"`
	Specie                      string    `json:"specie,omitempty"`
	IsInvasive                  bool      `json:"is_invasive"`
	InvasiveZone                string    `json:"invasive_zone,omitempty"`
	CreatedAt                   time.Time `json:"created_at"`
}

// NewSightingResponse builds a response from a sighting with preloaded
// relations.
func NewSightingResponse(s *models.Sighting) SightingResponse {
	coordinates := ""
	if s.Location.Coordinates != nil {
		coordinates = *s.Location.Coordinates
	}
	return SightingResponse{
		ID:                          s.ID,
		UUID:                        s.UUID,
		UserID:                      s.UserID,
		UserName:                    s.User.Name,
		EcosystemID:                 s.EcosystemID,
		EcosystemName:               s.Ecosystem.Name,
		LocationID:                  s.LocationID,
		SightingStateID:             s.SightingStateID,
		SightingStateName:           s.SightingState.Name,
		SightingLocation:            s.Location.Name,
		SightingLocationCoordinates: coordinates,
		Description:                 s.Description,
		ImagePath:                   s.ImagePath,
		Specie:                      s.Specie,
		IsInvasive:                  s.IsInvasive,
		InvasiveZone:                s.InvasiveZone,
		CreatedAt:                   s.CreatedAt,
	}
}

// NewSightingListResponse maps a slice of sightings.
func NewSightingListResponse(sightings []models.Sighting) []SightingResponse {
	out := make([]SightingResponse, 0, len(sightings))
	for i := range sightings {
		out = append(out, NewSightingResponse(&sightings[i]))
	}
	return out
}

// ContributedSpeciesResponse is the JSON shape for one contributed species
// with its representative sighting details.
type ContributedSpeciesResponse struct {
	ID                  uint      `json:"id"`
	Name                string    `json:"name"`
	TypeSpecieID        uint      `json:"type_specie_id"`
	TypeSpecieName      string    `json:"type_specie_name"`
	TypeSpecieCode      string    `json:"type_specie_code"`
	Location            string    `json:"location"`
	LocationCoordinates string    `json:"location_coordinates"`
	EcosystemName       string    `json:"ecosystem_name"`
	SightingDescription string    `json:"sighting_description"`
	ImagePath           string    `json:"image_path,omitempty"`
	SpecieField         string    `json:"specie_field,omitempty"`
	ContributedDate     time.Time `json:"contributed_date"`
	TotalSightings      int       `json:"total_sightings"`
}

// NewContributedSpeciesResponse maps a contributed-species aggregate.
func NewContributedSpeciesResponse(cs contribution.ContributedSpecies) ContributedSpeciesResponse {
	coordinates := ""
	if cs.Sighting.Location.Coordinates != nil {
		coordinates = *cs.Sighting.Location.Coordinates
	}
	return ContributedSpeciesResponse{
		ID:                  cs.Specie.ID,
		Name:                cs.Specie.Name,
		TypeSpecieID:        cs.Specie.TypeSpecieID,
		TypeSpecieName:      cs.Specie.TypeSpecie.Name,
		TypeSpecieCode:      cs.Specie.TypeSpecie.Code,
		Location:            cs.Sighting.Location.Name,
		LocationCoordinates: coordinates,
		EcosystemName:       cs.Sighting.Ecosystem.Name,
		SightingDescription: cs.Sighting.Description,
		ImagePath:           cs.Sighting.ImagePath,
		SpecieField:         cs.Sighting.Specie,
		ContributedDate:     cs.Sighting.CreatedAt,
		TotalSightings:      cs.TotalSightings,
	}
}
