package sighting

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ecoexplore/EcoExplore/app/models"
	"github.com/ecoexplore/EcoExplore/internal/pkg/apperr"
)

// Service implements the sighting submission and approval workflow. Every
// mutating operation runs inside one transaction: either all of its writes
// persist or none do.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService creates a sighting service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// NewServiceFromDB creates a sighting service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// Create submits a new sighting owned by user. The state is forced to
// PENDING regardless of any state fields in the request, and the location
// is resolved or created by exact (name, coordinates) match.
func (s *Service) Create(user *models.User, req CreateSightingRequest) (*models.Sighting, error) {
	if user == nil {
		return nil, apperr.Unauthorized("Unauthorized")
	}
	if strings.TrimSpace(req.LocationName) == "" {
		return nil, apperr.InvalidArgument("location_name is required")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, apperr.Wrap(apperr.KindValidationFailed, err.Error(), err)
	}

	var created *models.Sighting
	err := s.repo.Transaction(func(r Repository) error {
		ecosystem, err := r.GetEcosystem(req.EcosystemID)
		if err != nil {
			return notFound(err, "Ecosystem not found")
		}

		pending, err := r.GetStateByCode(models.STATE_PENDING)
		if err != nil {
			return notFound(err, "Sighting state not found")
		}

		var coords *string
		if strings.TrimSpace(req.Coordinates) != "" {
			c := req.Coordinates
			coords = &c
		}
		location, err := r.FindOrCreateLocation(req.LocationName, coords)
		if err != nil {
			return apperr.Wrap(apperr.KindValidationFailed, err.Error(), err)
		}

		sighting := &models.Sighting{
			UserID:          user.ID,
			EcosystemID:     ecosystem.ID,
			LocationID:      location.ID,
			SightingStateID: pending.ID,
			Specie:          req.Specie,
			Description:     req.Description,
			ImagePath:       req.ImagePath,
		}
		if err := sighting.Validate(); err != nil {
			return apperr.Wrap(apperr.KindValidationFailed, err.Error(), err)
		}
		if err := r.CreateSighting(sighting); err != nil {
			return apperr.Wrap(apperr.KindValidationFailed, err.Error(), err)
		}

		created, err = r.GetSightingWithRelations(sighting.ID)
		return err
	})
	if err != nil {
		log.WithError(err).Warn("sighting submission failed")
		return nil, err
	}
	return created, nil
}

// GetAll lists every sighting, newest first.
func (s *Service) GetAll() ([]models.Sighting, error) {
	return s.repo.ListSightings()
}

// GetForUser lists the given user's own sightings, newest first.
func (s *Service) GetForUser(user *models.User) ([]models.Sighting, error) {
	if user == nil {
		return nil, apperr.Unauthorized("Unauthorized")
	}
	return s.repo.ListSightingsForUser(user.ID)
}

// UpdateState applies an approval transition. Only admins may call it; the
// authorization check runs before any lookup. A sighting whose state is
// already terminal (ACCEPTED or REJECTED) cannot transition again. When the
// target state is ACCEPTED and a species id is supplied, a Record linking
// sighting and species is created and the beneficiary user (if resolvable)
// is granted points according to the species type. All writes share one
// transaction.
func (s *Service) UpdateState(actor *models.User, req UpdateStateRequest) (*models.Sighting, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Unauthorized("Unauthorized")
	}

	sightingID := req.ResolveSightingID()
	if sightingID == 0 {
		return nil, apperr.InvalidArgument("sighting id is required")
	}

	var updated *models.Sighting
	err := s.repo.Transaction(func(r Repository) error {
		target, err := resolveState(r, req.SightingStateID, req.SightingStateCode)
		if err != nil {
			return err
		}

		sighting, err := r.GetSighting(sightingID)
		if err != nil {
			return notFound(err, "Sighting not found")
		}

		current, err := r.GetStateByID(sighting.SightingStateID)
		if err != nil {
			return notFound(err, "Sighting state not found")
		}
		if current.IsTerminal() {
			return apperr.Newf(apperr.KindInvalidArgument,
				"sighting already reviewed (state %s)", current.Code)
		}

		sighting.SightingStateID = target.ID
		if err := r.SaveSighting(sighting); err != nil {
			return apperr.Wrap(apperr.KindValidationFailed, err.Error(), err)
		}

		if target.Code == models.STATE_ACCEPTED && req.SpecieID != 0 {
			if err := s.linkSpecies(r, sighting, req.SpecieID, req.UserID); err != nil {
				return err
			}
		}

		updated, err = r.GetSightingWithRelations(sighting.ID)
		return err
	})
	if err != nil {
		log.WithError(err).WithField("sighting_id", sightingID).Warn("state transition failed")
		return nil, err
	}
	return updated, nil
}

// linkSpecies creates the approval evidence Record and grants points to the
// beneficiary. Runs inside the UpdateState transaction.
func (s *Service) linkSpecies(r Repository, sighting *models.Sighting, specieID, beneficiaryID uint) error {
	specie, err := r.GetSpecieWithType(specieID)
	if err != nil {
		return notFound(err, "Specie not found")
	}

	record := &models.Record{SightingID: sighting.ID, SpecieID: specie.ID}
	if err := r.CreateRecord(record); err != nil {
		return apperr.Wrap(apperr.KindValidationFailed, err.Error(), err)
	}

	if beneficiaryID == 0 {
		return nil
	}
	beneficiary, err := r.GetUser(beneficiaryID)
	if err != nil {
		return notFound(err, "User not found")
	}

	switch specie.TypeSpecie.Code {
	case models.TYPE_NATIVE:
		return r.AddPoints(beneficiary.ID, PointsNative)
	case models.TYPE_INVASE:
		return r.AddPoints(beneficiary.ID, PointsInvase)
	}
	// Unknown type codes grant nothing; not an error.
	return nil
}

// MarkInvasive flags an existing sighting as invasive within a zone.
func (s *Service) MarkInvasive(actor *models.User, sightingID uint, zone string) (*models.Sighting, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Unauthorized("Unauthorized")
	}
	if strings.TrimSpace(zone) == "" {
		return nil, apperr.InvalidArgument("invasive_zone is required")
	}

	var updated *models.Sighting
	err := s.repo.Transaction(func(r Repository) error {
		sighting, err := r.GetSighting(sightingID)
		if err != nil {
			return notFound(err, "Sighting not found")
		}
		sighting.IsInvasive = true
		sighting.InvasiveZone = strings.TrimSpace(zone)
		if err := r.SaveSighting(sighting); err != nil {
			return apperr.Wrap(apperr.KindValidationFailed, err.Error(), err)
		}
		updated, err = r.GetSightingWithRelations(sighting.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ListInvasive reports all sightings flagged invasive.
func (s *Service) ListInvasive() ([]models.Sighting, error) {
	return s.repo.ListInvasiveSightings()
}

// resolveState picks the target state by explicit id, else by
// case-insensitive code, else defaults to PENDING.
func resolveState(r Repository, stateID uint, stateCode string) (*models.SightingState, error) {
	if stateID != 0 {
		state, err := r.GetStateByID(stateID)
		if err != nil {
			return nil, notFound(err, "Sighting state not found")
		}
		return state, nil
	}
	code := strings.ToUpper(strings.TrimSpace(stateCode))
	if code == "" {
		code = models.STATE_PENDING
	}
	state, err := r.GetStateByCode(code)
	if err != nil {
		return nil, notFound(err, "Sighting state not found")
	}
	return state, nil
}

// notFound maps gorm's record-not-found to the NotFound kind; anything else
// surfaces as a validation failure from the storage layer.
func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.KindNotFound, msg, err)
	}
	return apperr.Wrap(apperr.KindValidationFailed, err.Error(), err)
}
