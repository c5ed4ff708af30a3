package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ecoexplore/EcoExplore/app/models"
	"github.com/ecoexplore/EcoExplore/app/repository"
)

type ecosystemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HandleGetEcosystems lists all habitat categories.
func HandleGetEcosystems(c *fiber.Ctx) error {
	ecosystems, err := repository.GetGlobalFactory().GetEcosystemRepository().GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ecosystems)
}

// HandleGetEcosystem returns one ecosystem by id.
func HandleGetEcosystem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid ecosystem id"})
	}
	ecosystem, err := repository.GetGlobalFactory().GetEcosystemRepository().GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ecosystem not found"})
		}
		return respondError(c, err)
	}
	return c.JSON(ecosystem)
}

// HandleCreateEcosystem creates a habitat category.
func HandleCreateEcosystem(c *fiber.Ctx) error {
	var req ecosystemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid request body"})
	}

	ecosystem := &models.Ecosystem{Name: req.Name, Description: req.Description}
	if err := ecosystem.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err := repository.GetGlobalFactory().GetEcosystemRepository().Create(ecosystem); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ecosystem)
}

// HandleUpdateEcosystem updates a habitat category.
func HandleUpdateEcosystem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid ecosystem id"})
	}

	repo := repository.GetGlobalFactory().GetEcosystemRepository()
	ecosystem, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ecosystem not found"})
		}
		return respondError(c, err)
	}

	var req ecosystemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Name != "" {
		ecosystem.Name = req.Name
	}
	if req.Description != "" {
		ecosystem.Description = req.Description
	}
	if err := ecosystem.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err := repo.Update(ecosystem); err != nil {
		return respondError(c, err)
	}
	return c.JSON(ecosystem)
}

// HandleDeleteEcosystem removes a habitat category.
func HandleDeleteEcosystem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid ecosystem id"})
	}
	if err := repository.GetGlobalFactory().GetEcosystemRepository().Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
