package contribution

import (
	"gorm.io/gorm"

	"github.com/ecoexplore/EcoExplore/app/models"
	"github.com/ecoexplore/EcoExplore/internal/pkg/apperr"
)

// ContributedSpecies pairs a catalogue species with the most recent
// approved sighting a user contributed for it, plus the total number of
// such sightings.
type ContributedSpecies struct {
	Specie         models.Specie
	Sighting       models.Sighting
	TotalSightings int
}

// Service answers read-only contributed-species queries. Records only exist
// for approved sightings, so no state filtering is needed here.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ForUser groups the user's records by species and picks the most recently
// created sighting of each group as the representative sample. Ties break
// by record order, which is stable.
func (s *Service) ForUser(user *models.User) ([]ContributedSpecies, error) {
	if user == nil {
		return nil, apperr.Unauthorized("Unauthorized")
	}

	var records []models.Record
	err := s.db.
		Joins("JOIN sightings ON sightings.id = records.sighting_id").
		Where("sightings.user_id = ?", user.ID).
		Preload("Specie").
		Preload("Specie.TypeSpecie").
		Preload("Sighting").
		Preload("Sighting.Location").
		Preload("Sighting.Ecosystem").
		Order("records.id").
		Find(&records).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidationFailed, err.Error(), err)
	}

	bySpecie := make(map[uint]*ContributedSpecies)
	order := make([]uint, 0, len(records))
	for _, rec := range records {
		entry, ok := bySpecie[rec.SpecieID]
		if !ok {
			entry = &ContributedSpecies{Specie: rec.Specie, Sighting: rec.Sighting}
			bySpecie[rec.SpecieID] = entry
			order = append(order, rec.SpecieID)
		}
		entry.TotalSightings++
		if rec.Sighting.CreatedAt.After(entry.Sighting.CreatedAt) {
			entry.Sighting = rec.Sighting
		}
	}

	result := make([]ContributedSpecies, 0, len(order))
	for _, id := range order {
		result = append(result, *bySpecie[id])
	}
	return result, nil
}

// All lists every catalogue species with at least one record. Admin only.
func (s *Service) All(actor *models.User) ([]models.Specie, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Unauthorized("Unauthorized")
	}

	var species []models.Specie
	err := s.db.
		Distinct("species.*").
		Joins("JOIN records ON records.specie_id = species.id").
		Preload("TypeSpecie").
		Find(&species).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidationFailed, err.Error(), err)
	}
	return species, nil
}
