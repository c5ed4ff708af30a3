package database

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ecoexplore/EcoExplore/app/models"
	"github.com/ecoexplore/EcoExplore/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

var DB *gorm.DB

func SetupDatabase() {
	var err error
	// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
	)

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                      dsn,
			DefaultStringSize:        256,
			DisableDatetimePrecision: true,
		}), &gorm.Config{})
		if err == nil {
			if err := Migrate(DB); err != nil {
				panic(err)
			}
			return
		}

		log.Warnf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// Migrate applies the model schema and seeds the static reference data.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Ecosystem{},
		&models.Location{},
		&models.SightingState{},
		&models.Sighting{},
		&models.TypeSpecie{},
		&models.Specie{},
		&models.Record{},
	)
	if err != nil {
		return err
	}
	return SeedReferenceData(db)
}

// SeedReferenceData inserts the fixed sighting states and species types if
// they are missing. Idempotent, runs on every boot.
func SeedReferenceData(db *gorm.DB) error {
	states := []models.SightingState{
		{Code: models.STATE_PENDING, Name: "pending"},
		{Code: models.STATE_ACCEPTED, Name: "accepted"},
		{Code: models.STATE_REJECTED, Name: "rejected"},
	}
	for _, s := range states {
		var existing models.SightingState
		err := db.Where(models.SightingState{Code: s.Code}).
			Attrs(models.SightingState{Name: s.Name}).
			FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}

	types := []models.TypeSpecie{
		{Code: models.TYPE_NATIVE, Name: "Native"},
		{Code: models.TYPE_INVASE, Name: "Invasive"},
	}
	for _, t := range types {
		var existing models.TypeSpecie
		err := db.Where(models.TypeSpecie{Code: t.Code}).
			Attrs(models.TypeSpecie{Name: t.Name}).
			FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// GetDB returns the global database handle.
func GetDB() *gorm.DB {
	return DB
}

// SetDB swaps the global handle; used by tests to point controllers at an
// in-memory database.
func SetDB(db *gorm.DB) {
	DB = db
}
