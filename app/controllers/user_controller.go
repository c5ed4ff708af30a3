package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ecoexplore/EcoExplore/app/repository"
	"github.com/ecoexplore/EcoExplore/internal/pkg/usercontext"
)

// HandleGetUsers lists all accounts (admin view).
func HandleGetUsers(c *fiber.Ctx) error {
	users, err := repository.GetGlobalFactory().GetUserRepository().List()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]fiber.Map, 0, len(users))
	for i := range users {
		out = append(out, userResponse(&users[i]))
	}
	return c.JSON(out)
}

// HandleDeleteUser removes an account. Admins cannot delete themselves.
func HandleDeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid user id"})
	}
	if uint(id) == usercontext.GetUserID(c) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Cannot delete your own account"})
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	if _, err := repo.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "User not found"})
		}
		return respondError(c, err)
	}
	if err := repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetProfile returns the current user's profile.
func HandleGetProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(userResponse(user))
}

type updateProfileRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// HandleUpdateProfile updates name, email and optionally the password.
// Changing the password requires the current one.
func HandleUpdateProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.CurrentPassword != "" && req.NewPassword != "" {
		if !user.CheckPassword(req.CurrentPassword) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "current password is incorrect"})
		}
		if err := user.SetPassword(req.NewPassword); err != nil {
			return respondError(c, err)
		}
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if err := user.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err := repository.GetGlobalFactory().GetUserRepository().Update(user); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "email is already taken"})
	}
	return c.JSON(userResponse(user))
}

type updateProfilePhotoRequest struct {
	ProfilePhotoURL string `json:"profile_photo_url"`
}

// HandleUpdateProfilePhoto stores the profile photo URL. The photo bytes
// live in external storage; only the reference is kept here.
func HandleUpdateProfilePhoto(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req updateProfilePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid request body"})
	}

	user.ProfilePhotoURL = req.ProfilePhotoURL
	if err := repository.GetGlobalFactory().GetUserRepository().Update(user); err != nil {
		return respondError(c, err)
	}
	return c.JSON(userResponse(user))
}
