package repository

import (
	"github.com/ecoexplore/EcoExplore/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List() ([]models.User, error)
	Count() (int64, error)
	// AddPoints increments the points counter atomically at the storage
	// layer (UPDATE users SET points = points + ?), so concurrent grants
	// cannot lose updates.
	AddPoints(id uint, delta int) error
}

// EcosystemRepository defines the interface for ecosystem reference data
type EcosystemRepository interface {
	Create(ecosystem *models.Ecosystem) error
	GetByID(id uint) (*models.Ecosystem, error)
	GetAll() ([]models.Ecosystem, error)
	Update(ecosystem *models.Ecosystem) error
	Delete(id uint) error
}

// SpecieRepository defines the interface for the species catalogue
type SpecieRepository interface {
	Create(specie *models.Specie) error
	GetByID(id uint) (*models.Specie, error)
	GetByIDWithType(id uint) (*models.Specie, error)
	GetAll() ([]models.Specie, error)
	Update(specie *models.Specie) error
	Delete(id uint) error
	ListTypes() ([]models.TypeSpecie, error)
	CountByType(typeSpecieID uint) (int64, error)
	DeleteType(id uint) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	User      UserRepository
	Ecosystem EcosystemRepository
	Specie    SpecieRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:      NewUserRepository(db),
		Ecosystem: NewEcosystemRepository(db),
		Specie:    NewSpecieRepository(db),
	}
}
