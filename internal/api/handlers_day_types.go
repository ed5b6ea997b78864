package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fuelhq/fuel/internal/db"
	"github.com/fuelhq/fuel/internal/models"
	"github.com/fuelhq/fuel/internal/services"
)

func (handler *Handler) GetDayTypes(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	dayTypes, err := handler.repos.DayTypes.ListByUser(identity.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch day types")
	}

	responses := make([]dayTypeResponse, 0, len(dayTypes))
	for _, dayType := range dayTypes {
		responses = append(responses, buildDayTypeResponse(dayType))
	}
	return c.JSON(responses)
}

func (handler *Handler) CreateDayType(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := dayTypeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return apiError(c, fiber.StatusBadRequest, "day type name is required")
	}

	dayType := models.DayType{UserID: identity.UserID, Name: strings.TrimSpace(*input.Name)}
	applyDayTypeRanges(&dayType, input)

	if err := handler.repos.DayTypes.Create(&dayType); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create day type")
	}
	return c.Status(fiber.StatusCreated).JSON(buildDayTypeResponse(dayType))
}

func (handler *Handler) UpdateDayType(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	dayTypeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day type id")
	}

	input := dayTypeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return apiError(c, fiber.StatusBadRequest, "day type name must not be empty")
		}
		updates["name"] = name
	}
	for column, value := range dayTypeRangeUpdates(input) {
		updates[column] = value
	}
	if len(updates) == 0 {
		return apiError(c, fiber.StatusBadRequest, "empty update")
	}

	dayType, err := handler.repos.DayTypes.Update(dayTypeID, identity.UserID, updates)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "day type not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update day type")
	}
	return c.JSON(buildDayTypeResponse(dayType))
}

func (handler *Handler) DeleteDayType(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	dayTypeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day type id")
	}

	if err := handler.repos.DayTypes.Delete(dayTypeID, identity.UserID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "day type not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete day type")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AssignDayType pins a day type to one calendar date, replacing any previous
// assignment for that date.
func (handler *Handler) AssignDayType(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := services.ParseDay(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := assignDayTypeInput{}
	if err := c.BodyParser(&input); err != nil || input.DayTypeID == 0 {
		return apiError(c, fiber.StatusBadRequest, "day type id is required")
	}

	dayType, found, err := handler.repos.DayTypes.FindByIDForUser(input.DayTypeID, identity.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch day type")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "day type not found")
	}

	dayStart, dayEnd := services.DayRange(day, handler.location)
	if err := handler.repos.DayTypes.UpsertLog(identity.UserID, dayStart, dayEnd, dayType.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to assign day type")
	}
	return c.JSON(buildDayTypeResponse(dayType))
}

func (handler *Handler) UnassignDayType(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := services.ParseDay(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	dayStart, dayEnd := services.DayRange(day, handler.location)
	if err := handler.repos.DayTypes.DeleteLog(identity.UserID, dayStart, dayEnd); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "no day type assigned")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to unassign day type")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func applyDayTypeRanges(dayType *models.DayType, input dayTypeInput) {
	if input.CaloriesMin != nil {
		dayType.CaloriesMin = *input.CaloriesMin
	}
	if input.CaloriesMax != nil {
		dayType.CaloriesMax = *input.CaloriesMax
	}
	if input.ProteinMin != nil {
		dayType.ProteinMin = *input.ProteinMin
	}
	if input.ProteinMax != nil {
		dayType.ProteinMax = *input.ProteinMax
	}
	if input.CarbsMin != nil {
		dayType.CarbsMin = *input.CarbsMin
	}
	if input.CarbsMax != nil {
		dayType.CarbsMax = *input.CarbsMax
	}
	if input.FatMin != nil {
		dayType.FatMin = *input.FatMin
	}
	if input.FatMax != nil {
		dayType.FatMax = *input.FatMax
	}
	if input.FiberMin != nil {
		dayType.FiberMin = *input.FiberMin
	}
	if input.FiberMax != nil {
		dayType.FiberMax = *input.FiberMax
	}
}

func dayTypeRangeUpdates(input dayTypeInput) map[string]any {
	updates := map[string]any{}
	if input.CaloriesMin != nil {
		updates["calories_min"] = *input.CaloriesMin
	}
	if input.CaloriesMax != nil {
		updates["calories_max"] = *input.CaloriesMax
	}
	if input.ProteinMin != nil {
		updates["protein_min"] = *input.ProteinMin
	}
	if input.ProteinMax != nil {
		updates["protein_max"] = *input.ProteinMax
	}
	if input.CarbsMin != nil {
		updates["carbs_min"] = *input.CarbsMin
	}
	if input.CarbsMax != nil {
		updates["carbs_max"] = *input.CarbsMax
	}
	if input.FatMin != nil {
		updates["fat_min"] = *input.FatMin
	}
	if input.FatMax != nil {
		updates["fat_max"] = *input.FatMax
	}
	if input.FiberMin != nil {
		updates["fiber_min"] = *input.FiberMin
	}
	if input.FiberMax != nil {
		updates["fiber_max"] = *input.FiberMax
	}
	return updates
}
