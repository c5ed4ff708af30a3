package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetEcosystemRepository returns the ecosystem repository instance
func (f *Factory) GetEcosystemRepository() EcosystemRepository {
	return f.GetRepositories().Ecosystem
}

// GetSpecieRepository returns the species catalogue repository instance
func (f *Factory) GetSpecieRepository() SpecieRepository {
	return f.GetRepositories().Specie
}

// Global factory instance
var globalFactory *Factory

// InitializeFactory initializes the global repository factory. Calling it
// again rebinds the factory, which tests use to swap in an in-memory DB.
func InitializeFactory(db *gorm.DB) {
	globalFactory = NewFactory(db)
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}
