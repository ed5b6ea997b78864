package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fuelhq/fuel/internal/db"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, found, err := handler.repos.Profiles.FindByID(identity.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch profile")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}
	return c.JSON(buildProfileResponse(profile))
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]any{}
	if input.DisplayName != nil {
		updates["display_name"] = strings.TrimSpace(*input.DisplayName)
	}
	if input.CalorieGoal != nil {
		if *input.CalorieGoal < 0 {
			return apiError(c, fiber.StatusBadRequest, "goals must not be negative")
		}
		updates["calorie_goal"] = *input.CalorieGoal
	}
	if input.ProteinGoal != nil {
		if *input.ProteinGoal < 0 {
			return apiError(c, fiber.StatusBadRequest, "goals must not be negative")
		}
		updates["protein_goal"] = *input.ProteinGoal
	}
	if input.CarbsGoal != nil {
		if *input.CarbsGoal < 0 {
			return apiError(c, fiber.StatusBadRequest, "goals must not be negative")
		}
		updates["carbs_goal"] = *input.CarbsGoal
	}
	if input.FatGoal != nil {
		if *input.FatGoal < 0 {
			return apiError(c, fiber.StatusBadRequest, "goals must not be negative")
		}
		updates["fat_goal"] = *input.FatGoal
	}
	if input.FiberGoal != nil {
		if *input.FiberGoal < 0 {
			return apiError(c, fiber.StatusBadRequest, "goals must not be negative")
		}
		updates["fiber_goal"] = *input.FiberGoal
	}
	if len(updates) == 0 {
		return apiError(c, fiber.StatusBadRequest, "empty update")
	}

	profile, err := handler.repos.Profiles.Update(identity.UserID, updates)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "profile not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}
	return c.JSON(buildProfileResponse(profile))
}
