package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fuelhq/fuel/internal/db"
	"github.com/fuelhq/fuel/internal/models"
	"github.com/fuelhq/fuel/internal/services"
)

const maxMealNameLength = 200

func (handler *Handler) GetDailySummary(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := services.ParseDay(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	dayStart, dayEnd := services.DayRange(day, handler.location)
	meals, err := handler.repos.Meals.ListByUserAndDayRange(identity.UserID, dayStart, dayEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch meals")
	}

	totals := services.SummarizeDay(day, meals)
	return c.JSON(buildDailySummaryResponse(totals, meals))
}

func (handler *Handler) GetMealHistory(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit := services.DefaultHistoryDays
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return apiError(c, fiber.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	meals, err := handler.repos.Meals.ListRecentByUser(identity.UserID, services.HistoryFetchLimit(limit))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch history")
	}

	days := services.BucketHistory(meals, limit, handler.location)
	return c.JSON(buildHistoryResponse(days))
}

func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := mealInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > maxMealNameLength {
		return apiError(c, fiber.StatusBadRequest, "invalid meal name")
	}
	if !models.IsValidMealType(input.MealType) {
		return apiError(c, fiber.StatusBadRequest, "invalid meal type")
	}
	if input.Calories < 0 || input.ProteinG < 0 || input.CarbsG < 0 || input.FatG < 0 || input.FiberG < 0 {
		return apiError(c, fiber.StatusBadRequest, "nutrients must not be negative")
	}

	day, err := services.ParseDay(input.LoggedDate, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	meal := models.Meal{
		UserID:     identity.UserID,
		LoggedDate: day,
		MealType:   input.MealType,
		Name:       name,
		Calories:   input.Calories,
		ProteinG:   input.ProteinG,
		CarbsG:     input.CarbsG,
		FatG:       input.FatG,
		FiberG:     input.FiberG,
		Notes:      input.Notes,
	}
	if err := handler.repos.Meals.Create(&meal); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create meal")
	}

	return c.Status(fiber.StatusCreated).JSON(buildMealResponse(meal))
}

func (handler *Handler) UpdateMealPortion(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	mealID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}

	input := portionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.PortionWeight <= 0 {
		return apiError(c, fiber.StatusBadRequest, "portion weight must be positive")
	}

	meal, found, err := handler.repos.Meals.FindByIDForUser(mealID, identity.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch meal")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "meal not found")
	}

	rescaled := services.RescalePortion(meal, input.PortionWeight)
	if err := handler.repos.Meals.Save(&rescaled); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update meal")
	}

	return c.JSON(buildMealResponse(rescaled))
}

func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	mealID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}

	if err := handler.repos.Meals.DeleteByIDForUser(mealID, identity.UserID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "meal not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete meal")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
