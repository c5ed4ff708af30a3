package sighting

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ecoexplore/EcoExplore/app/models"
	"github.com/ecoexplore/EcoExplore/internal/pkg/cache"
)

// Repository provides the DB operations used by the sighting service.
// Transaction hands the callback a Repository bound to the transaction, so
// every write inside the workflow commits or rolls back as one unit.
type Repository interface {
	Transaction(fn func(Repository) error) error

	GetSighting(id uint) (*models.Sighting, error)
	GetSightingWithRelations(id uint) (*models.Sighting, error)
	ListSightings() ([]models.Sighting, error)
	ListSightingsForUser(userID uint) ([]models.Sighting, error)
	ListInvasiveSightings() ([]models.Sighting, error)
	CreateSighting(s *models.Sighting) error
	SaveSighting(s *models.Sighting) error

	GetEcosystem(id uint) (*models.Ecosystem, error)
	FindOrCreateLocation(name string, coordinates *string) (*models.Location, error)
	GetStateByID(id uint) (*models.SightingState, error)
	GetStateByCode(code string) (*models.SightingState, error)

	GetSpecieWithType(id uint) (*models.Specie, error)
	GetUser(id uint) (*models.User, error)
	AddPoints(userID uint, delta int) error
	CreateRecord(r *models.Record) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a sighting repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Transaction(fn func(Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepository{db: tx})
	})
}

func (r *gormRepository) GetSighting(id uint) (*models.Sighting, error) {
	var s models.Sighting
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *gormRepository) GetSightingWithRelations(id uint) (*models.Sighting, error) {
	var s models.Sighting
	err := r.db.
		Preload("User").
		Preload("Ecosystem").
		Preload("Location").
		Preload("SightingState").
		First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *gormRepository) ListSightings() ([]models.Sighting, error) {
	var sightings []models.Sighting
	err := r.db.
		Preload("User").
		Preload("Ecosystem").
		Preload("Location").
		Preload("SightingState").
		Order("created_at DESC").
		Find(&sightings).Error
	return sightings, err
}

func (r *gormRepository) ListSightingsForUser(userID uint) ([]models.Sighting, error) {
	var sightings []models.Sighting
	err := r.db.
		Preload("User").
		Preload("Ecosystem").
		Preload("Location").
		Preload("SightingState").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sightings).Error
	return sightings, err
}

func (r *gormRepository) ListInvasiveSightings() ([]models.Sighting, error) {
	var sightings []models.Sighting
	err := r.db.
		Preload("Ecosystem").
		Preload("Location").
		Where("is_invasive = ?", true).
		Order("created_at DESC").
		Find(&sightings).Error
	return sightings, err
}

func (r *gormRepository) CreateSighting(s *models.Sighting) error {
	return r.db.Create(s).Error
}

func (r *gormRepository) SaveSighting(s *models.Sighting) error {
	return r.db.Save(s).Error
}

func (r *gormRepository) GetEcosystem(id uint) (*models.Ecosystem, error) {
	var e models.Ecosystem
	if err := r.db.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// FindOrCreateLocation dedupes locations by exact (name, coordinates).
func (r *gormRepository) FindOrCreateLocation(name string, coordinates *string) (*models.Location, error) {
	var loc models.Location
	query := r.db.Where("name = ?", name)
	if coordinates == nil {
		query = query.Where("coordinates IS NULL")
	} else {
		query = query.Where("coordinates = ?", *coordinates)
	}
	err := query.First(&loc).Error
	if err == nil {
		return &loc, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	loc = models.Location{Name: name, Coordinates: coordinates}
	if err := r.db.Create(&loc).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *gormRepository) GetStateByID(id uint) (*models.SightingState, error) {
	var state models.SightingState
	if err := r.db.First(&state, id).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

const stateCacheTTL = 12 * time.Hour

// GetStateByCode looks the state up in the cache first; reference data
// never changes at runtime. Cache failures fall through to the database.
func (r *gormRepository) GetStateByCode(code string) (*models.SightingState, error) {
	key := "sighting_state:" + strings.ToUpper(code)
	if cached, err := cache.Get(key); err == nil && cached != "" {
		var state models.SightingState
		if err := json.Unmarshal([]byte(cached), &state); err == nil {
			return &state, nil
		}
	}

	var state models.SightingState
	if err := r.db.Where("code = ?", strings.ToUpper(code)).First(&state).Error; err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(state); err == nil {
		_ = cache.Set(key, payload, stateCacheTTL)
	}
	return &state, nil
}

func (r *gormRepository) GetSpecieWithType(id uint) (*models.Specie, error) {
	var specie models.Specie
	if err := r.db.Preload("TypeSpecie").First(&specie, id).Error; err != nil {
		return nil, err
	}
	return &specie, nil
}

func (r *gormRepository) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AddPoints is an atomic storage-layer increment, not read-modify-write.
func (r *gormRepository) AddPoints(userID uint, delta int) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", delta)).Error
}

func (r *gormRepository) CreateRecord(rec *models.Record) error {
	return r.db.Create(rec).Error
}
