package repository

import (
	"github.com/ecoexplore/EcoExplore/app/models"
	"gorm.io/gorm"
)

// specieRepository implements the SpecieRepository interface
type specieRepository struct {
	db *gorm.DB
}

// NewSpecieRepository creates a new species catalogue repository instance
func NewSpecieRepository(db *gorm.DB) SpecieRepository {
	return &specieRepository{db: db}
}

// Create creates a new catalogue species
func (r *specieRepository) Create(specie *models.Specie) error {
	return r.db.Create(specie).Error
}

// GetByID retrieves a species by its ID
func (r *specieRepository) GetByID(id uint) (*models.Specie, error) {
	var specie models.Specie
	err := r.db.First(&specie, id).Error
	if err != nil {
		return nil, err
	}
	return &specie, nil
}

// GetByIDWithType retrieves a species with its type preloaded
func (r *specieRepository) GetByIDWithType(id uint) (*models.Specie, error) {
	var specie models.Specie
	err := r.db.Preload("TypeSpecie").First(&specie, id).Error
	if err != nil {
		return nil, err
	}
	return &specie, nil
}

// GetAll retrieves the whole catalogue with types preloaded
func (r *specieRepository) GetAll() ([]models.Specie, error) {
	var species []models.Specie
	err := r.db.Preload("TypeSpecie").Order("name").Find(&species).Error
	return species, err
}

// Update updates an existing species
func (r *specieRepository) Update(specie *models.Specie) error {
	return r.db.Save(specie).Error
}

// Delete removes a species by its ID
func (r *specieRepository) Delete(id uint) error {
	return r.db.Delete(&models.Specie{}, id).Error
}

// ListTypes retrieves all species types
func (r *specieRepository) ListTypes() ([]models.TypeSpecie, error) {
	var types []models.TypeSpecie
	err := r.db.Order("id").Find(&types).Error
	return types, err
}

// DeleteType removes a species type. Callers must check for dependent
// species first (restrict-on-delete).
func (r *specieRepository) DeleteType(id uint) error {
	return r.db.Delete(&models.TypeSpecie{}, id).Error
}

// CountByType counts catalogue species belonging to a type
func (r *specieRepository) CountByType(typeSpecieID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Specie{}).Where("type_specie_id = ?", typeSpecieID).Count(&count).Error
	return count, err
}
