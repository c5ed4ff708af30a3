package controllers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ecoexplore/EcoExplore/app/models"
	"github.com/ecoexplore/EcoExplore/app/repository"
	"github.com/ecoexplore/EcoExplore/internal/pkg/cache"
)

const specieTypeCacheKey = "type_species:all"

type specieRequest struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	TypeSpecieID uint   `json:"type_specie_id"`
}

func specieResponse(s *models.Specie) fiber.Map {
	return fiber.Map{
		"id":               s.ID,
		"name":             s.Name,
		"type_specie_id":   s.TypeSpecieID,
		"type_specie_name": s.TypeSpecie.Name,
		"type_specie_code": s.TypeSpecie.Code,
		"created_at":       s.CreatedAt,
		"updated_at":       s.UpdatedAt,
	}
}

// HandleGetSpecies lists the whole catalogue.
func HandleGetSpecies(c *fiber.Ctx) error {
	species, err := repository.GetGlobalFactory().GetSpecieRepository().GetAll()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]fiber.Map, 0, len(species))
	for i := range species {
		out = append(out, specieResponse(&species[i]))
	}
	return c.JSON(out)
}

// HandleCreateSpecie adds a species to the catalogue.
func HandleCreateSpecie(c *fiber.Ctx) error {
	var req specieRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid request body"})
	}

	specie := &models.Specie{Name: req.Name, TypeSpecieID: req.TypeSpecieID}
	if err := specie.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repository.GetGlobalFactory().GetSpecieRepository()
	if err := repo.Create(specie); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "species name must be unique per type"})
	}
	created, err := repo.GetByIDWithType(specie.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(specieResponse(created))
}

// HandleUpdateSpecie renames or reclassifies a catalogue species.
func HandleUpdateSpecie(c *fiber.Ctx) error {
	var req specieRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid request body"})
	}

	repo := repository.GetGlobalFactory().GetSpecieRepository()
	specie, err := repo.GetByID(req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Specie not found"})
		}
		return respondError(c, err)
	}

	if req.Name != "" {
		specie.Name = req.Name
	}
	if req.TypeSpecieID != 0 {
		specie.TypeSpecieID = req.TypeSpecieID
	}
	if err := specie.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err := repo.Update(specie); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "species name must be unique per type"})
	}
	updated, err := repo.GetByIDWithType(specie.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(specieResponse(updated))
}

// HandleDeleteSpecie removes a species from the catalogue.
func HandleDeleteSpecie(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid specie id"})
	}
	if err := repository.GetGlobalFactory().GetSpecieRepository().Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "specie cannot be deleted"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetSpecieTypes lists the species type reference data. The list is
// static, so it is served from the cache when possible.
func HandleGetSpecieTypes(c *fiber.Ctx) error {
	if cached, err := cache.Get(specieTypeCacheKey); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	types, err := repository.GetGlobalFactory().GetSpecieRepository().ListTypes()
	if err != nil {
		return respondError(c, err)
	}
	if payload, err := json.Marshal(types); err == nil {
		_ = cache.Set(specieTypeCacheKey, payload, 12*time.Hour)
	}
	return c.JSON(types)
}

// HandleDeleteSpecieType removes a species type, refusing while catalogue
// species still depend on it (restrict-on-delete).
func HandleDeleteSpecieType(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid type id"})
	}

	repo := repository.GetGlobalFactory().GetSpecieRepository()
	count, err := repo.CountByType(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	if count > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "type still has dependent species"})
	}

	if err := repo.DeleteType(uint(id)); err != nil {
		return respondError(c, err)
	}
	_ = cache.Delete(specieTypeCacheKey)
	return c.SendStatus(fiber.StatusNoContent)
}
