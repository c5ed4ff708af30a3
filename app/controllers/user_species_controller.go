package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecoexplore/EcoExplore/internal/pkg/contribution"
	"github.com/ecoexplore/EcoExplore/internal/pkg/database"
	"github.com/ecoexplore/EcoExplore/internal/pkg/viewmodel"
)

func contributionService() *contribution.Service {
	return contribution.NewService(database.GetDB())
}

// HandleMyContributedSpecies reports the species the current user has
// contributed through approved sightings.
func HandleMyContributedSpecies(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	contributed, err := contributionService().ForUser(user)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]viewmodel.ContributedSpeciesResponse, 0, len(contributed))
	for _, cs := range contributed {
		out = append(out, viewmodel.NewContributedSpeciesResponse(cs))
	}
	return c.JSON(out)
}

// HandleAllContributedSpecies lists every species with approval records
// (admin view).
func HandleAllContributedSpecies(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	species, err := contributionService().All(user)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]fiber.Map, 0, len(species))
	for i := range species {
		out = append(out, specieResponse(&species[i]))
	}
	return c.JSON(out)
}
