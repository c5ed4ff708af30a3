package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecoexplore/EcoExplore/internal/pkg/database"
	"github.com/ecoexplore/EcoExplore/internal/pkg/sighting"
	"github.com/ecoexplore/EcoExplore/internal/pkg/viewmodel"
)

func sightingService() *sighting.Service {
	return sighting.NewServiceFromDB(database.GetDB())
}

// HandleCreateSighting submits a new sighting for the current user.
// The created sighting always starts in the PENDING state.
func HandleCreateSighting(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req sighting.CreateSightingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid request body"})
	}

	created, err := sightingService().Create(user, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(viewmodel.NewSightingResponse(created))
}

// HandleGetSightings lists every sighting (admin review queue).
func HandleGetSightings(c *fiber.Ctx) error {
	sightings, err := sightingService().GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(viewmodel.NewSightingListResponse(sightings))
}

// HandleGetMySightings lists the current user's own sightings.
func HandleGetMySightings(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	sightings, err := sightingService().GetForUser(user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(viewmodel.NewSightingListResponse(sightings))
}

// HandleUpdateSightingState applies the approval transition.
func HandleUpdateSightingState(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req sighting.UpdateStateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid request body"})
	}

	updated, err := sightingService().UpdateState(user, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(viewmodel.NewSightingResponse(updated))
}

type markInvasiveRequest struct {
	InvasiveZone string `json:"invasive_zone"`
}

// HandleMarkInvasive flags a sighting as invasive within a zone.
func HandleMarkInvasive(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid sighting id"})
	}

	var req markInvasiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid request body"})
	}

	updated, err := sightingService().MarkInvasive(user, uint(id), req.InvasiveZone)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Species marked as invasive",
		"sighting": viewmodel.NewSightingResponse(updated),
	})
}

// HandleGetInvasiveSightings reports all sightings flagged invasive.
func HandleGetInvasiveSightings(c *fiber.Ctx) error {
	sightings, err := sightingService().ListInvasive()
	if err != nil {
		return respondError(c, err)
	}

	data := make([]fiber.Map, 0, len(sightings))
	for i := range sightings {
		s := &sightings[i]
		data = append(data, fiber.Map{
			"id":            s.ID,
			"description":   s.Description,
			"invasive_zone": s.InvasiveZone,
			"ecosystem":     s.Ecosystem.Name,
			"location":      s.Location.Name,
			"reported_at":   s.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"count": len(data), "data": data})
}
