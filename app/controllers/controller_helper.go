package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ecoexplore/EcoExplore/app/models"
	"github.com/ecoexplore/EcoExplore/app/repository"
	"github.com/ecoexplore/EcoExplore/internal/pkg/apperr"
	"github.com/ecoexplore/EcoExplore/internal/pkg/usercontext"
)

// currentUser loads the authenticated user resolved by the auth middleware.
func currentUser(c *fiber.Ctx) (*models.User, error) {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return nil, apperr.Unauthorized("Unauthorized")
	}
	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("Unauthorized")
		}
		return nil, err
	}
	return user, nil
}

// respondError renders the uniform error body. Unauthorized maps to 401,
// every other failure kind to 422.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusUnprocessableEntity
	if apperr.IsUnauthorized(err) {
		status = fiber.StatusUnauthorized
	} else if apperr.KindOf(err) == apperr.KindUnknown {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// userResponse is the public JSON shape of an account.
func userResponse(user *models.User) fiber.Map {
	return fiber.Map{
		"id":                user.ID,
		"uuid":              user.UUID,
		"name":              user.Name,
		"email":             user.Email,
		"role":              user.Role,
		"active":            user.Active,
		"points":            user.Points,
		"profile_photo_url": user.ProfilePhotoURL,
		"created_at":        user.CreatedAt,
	}
}
