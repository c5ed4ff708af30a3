package repository

import (
	"github.com/ecoexplore/EcoExplore/app/models"
	"gorm.io/gorm"
)

// ecosystemRepository implements the EcosystemRepository interface
type ecosystemRepository struct {
	db *gorm.DB
}

// NewEcosystemRepository creates a new ecosystem repository instance
func NewEcosystemRepository(db *gorm.DB) EcosystemRepository {
	return &ecosystemRepository{db: db}
}

// Create creates a new ecosystem in the database
func (r *ecosystemRepository) Create(ecosystem *models.Ecosystem) error {
	return r.db.Create(ecosystem).Error
}

// GetByID retrieves an ecosystem by its ID
func (r *ecosystemRepository) GetByID(id uint) (*models.Ecosystem, error) {
	var ecosystem models.Ecosystem
	err := r.db.First(&ecosystem, id).Error
	if err != nil {
		return nil, err
	}
	return &ecosystem, nil
}

// GetAll retrieves all ecosystems ordered by name
func (r *ecosystemRepository) GetAll() ([]models.Ecosystem, error) {
	var ecosystems []models.Ecosystem
	err := r.db.Order("name").Find(&ecosystems).Error
	return ecosystems, err
}

// Update updates an existing ecosystem
func (r *ecosystemRepository) Update(ecosystem *models.Ecosystem) error {
	return r.db.Save(ecosystem).Error
}

// Delete removes an ecosystem by its ID
func (r *ecosystemRepository) Delete(id uint) error {
	return r.db.Delete(&models.Ecosystem{}, id).Error
}
