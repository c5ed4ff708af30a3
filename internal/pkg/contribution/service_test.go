package contribution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ecoexplore/EcoExplore/app/models"
	"github.com/ecoexplore/EcoExplore/internal/pkg/apperr"
	"github.com/ecoexplore/EcoExplore/internal/pkg/database"
)

type fixture struct {
	db       *gorm.DB
	svc      *Service
	admin    *models.User
	member   *models.User
	other    *models.User
	accepted models.SightingState
	location models.Location
	eco      models.Ecosystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := database.NewTestDB()
	require.NoError(t, err)

	f := &fixture{db: db, svc: NewService(db)}

	f.admin = &models.User{Name: "Admin", Email: "admin@example.com", Password: "x", Role: models.RoleAdmin, Active: true}
	require.NoError(t, db.Create(f.admin).Error)
	f.member = &models.User{Name: "Member", Email: "member@example.com", Password: "x", Role: models.RoleMember, Active: true}
	require.NoError(t, db.Create(f.member).Error)
	f.other = &models.User{Name: "Other", Email: "other@example.com", Password: "x", Role: models.RoleMember, Active: true}
	require.NoError(t, db.Create(f.other).Error)

	require.NoError(t, db.Where("code = ?", models.STATE_ACCEPTED).First(&f.accepted).Error)

	f.eco = models.Ecosystem{Name: "Manglar"}
	require.NoError(t, db.Create(&f.eco).Error)
	f.location = models.Location{Name: "Estero Salado"}
	require.NoError(t, db.Create(&f.location).Error)

	return f
}

func (f *fixture) createSpecie(t *testing.T, typeCode, name string) *models.Specie {
	t.Helper()
	var typ models.TypeSpecie
	require.NoError(t, f.db.Where("code = ?", typeCode).First(&typ).Error)
	specie := &models.Specie{TypeSpecieID: typ.ID, Name: name}
	require.NoError(t, f.db.Create(specie).Error)
	return specie
}

// addRecord creates an approved sighting at the given time plus its
// catalogue record, the way the approval workflow would.
func (f *fixture) addRecord(t *testing.T, user *models.User, specie *models.Specie, at time.Time) *models.Sighting {
	t.Helper()
	sighting := &models.Sighting{
		UserID:          user.ID,
		EcosystemID:     f.eco.ID,
		LocationID:      f.location.ID,
		SightingStateID: f.accepted.ID,
		CreatedAt:       at,
	}
	require.NoError(t, f.db.Create(sighting).Error)
	require.NoError(t, f.db.Create(&models.Record{SightingID: sighting.ID, SpecieID: specie.ID}).Error)
	return sighting
}

func TestForUserGroupsBySpecies(t *testing.T) {
	f := newFixture(t)
	iguana := f.createSpecie(t, models.TYPE_NATIVE, "Green Iguana")
	lionfish := f.createSpecie(t, models.TYPE_INVASE, "Lionfish")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.addRecord(t, f.member, iguana, base)
	latest := f.addRecord(t, f.member, iguana, base.Add(48*time.Hour))
	f.addRecord(t, f.member, iguana, base.Add(24*time.Hour))
	f.addRecord(t, f.member, lionfish, base)

	result, err := f.svc.ForUser(f.member)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, iguana.ID, result[0].Specie.ID)
	assert.Equal(t, 3, result[0].TotalSightings)
	assert.Equal(t, latest.ID, result[0].Sighting.ID)
	assert.Equal(t, models.TYPE_NATIVE, result[0].Specie.TypeSpecie.Code)
	assert.Equal(t, "Estero Salado", result[0].Sighting.Location.Name)
	assert.Equal(t, "Manglar", result[0].Sighting.Ecosystem.Name)

	assert.Equal(t, lionfish.ID, result[1].Specie.ID)
	assert.Equal(t, 1, result[1].TotalSightings)
}

func TestForUserExcludesOtherUsers(t *testing.T) {
	f := newFixture(t)
	iguana := f.createSpecie(t, models.TYPE_NATIVE, "Green Iguana")

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.addRecord(t, f.other, iguana, at)

	result, err := f.svc.ForUser(f.member)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestForUserRequiresUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ForUser(nil)
	assert.True(t, apperr.IsUnauthorized(err))
}

func TestAllListsSpeciesWithRecordsOnce(t *testing.T) {
	f := newFixture(t)
	iguana := f.createSpecie(t, models.TYPE_NATIVE, "Green Iguana")
	f.createSpecie(t, models.TYPE_INVASE, "Lionfish")

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.addRecord(t, f.member, iguana, at)
	f.addRecord(t, f.other, iguana, at.Add(time.Hour))

	species, err := f.svc.All(f.admin)
	require.NoError(t, err)
	require.Len(t, species, 1)
	assert.Equal(t, iguana.ID, species[0].ID)
	assert.Equal(t, models.TYPE_NATIVE, species[0].TypeSpecie.Code)
}

func TestAllRejectsNonAdmin(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.All(f.member)
	assert.True(t, apperr.IsUnauthorized(err))

	_, err = f.svc.All(nil)
	assert.True(t, apperr.IsUnauthorized(err))
}
