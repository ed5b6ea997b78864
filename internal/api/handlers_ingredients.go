package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fuelhq/fuel/internal/db"
	"github.com/fuelhq/fuel/internal/models"
)

// The catalog is global: any authenticated caller may write to it.
// TODO: gate mutations behind a curator role once profiles carry one.

func (handler *Handler) GetIngredients(c *fiber.Ctx) error {
	ingredients, err := handler.repos.Ingredients.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch ingredients")
	}

	responses := make([]ingredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		responses = append(responses, buildIngredientResponse(ingredient))
	}
	return c.JSON(responses)
}

func (handler *Handler) CreateIngredient(c *fiber.Ctx) error {
	input := ingredientInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return apiError(c, fiber.StatusBadRequest, "ingredient name is required")
	}

	ingredient := models.Ingredient{Name: strings.TrimSpace(*input.Name)}
	if input.CaloriesPer100g != nil {
		ingredient.CaloriesPer100g = *input.CaloriesPer100g
	}
	if input.ProteinPer100g != nil {
		ingredient.ProteinPer100g = *input.ProteinPer100g
	}
	if input.CarbsPer100g != nil {
		ingredient.CarbsPer100g = *input.CarbsPer100g
	}
	if input.FatPer100g != nil {
		ingredient.FatPer100g = *input.FatPer100g
	}
	if input.FiberPer100g != nil {
		ingredient.FiberPer100g = *input.FiberPer100g
	}
	ingredient.UsdaFdcID = input.UsdaFdcID
	ingredient.Upc = input.Upc
	if input.Source != nil {
		ingredient.Source = *input.Source
	}
	if input.SourceName != nil {
		ingredient.SourceName = *input.SourceName
	}
	if ingredient.CaloriesPer100g < 0 || ingredient.ProteinPer100g < 0 || ingredient.CarbsPer100g < 0 ||
		ingredient.FatPer100g < 0 || ingredient.FiberPer100g < 0 {
		return apiError(c, fiber.StatusBadRequest, "nutrients must not be negative")
	}

	if err := handler.repos.Ingredients.Create(&ingredient); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create ingredient")
	}
	return c.Status(fiber.StatusCreated).JSON(buildIngredientResponse(ingredient))
}

func (handler *Handler) UpdateIngredient(c *fiber.Ctx) error {
	ingredientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid ingredient id")
	}

	input := ingredientInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return apiError(c, fiber.StatusBadRequest, "ingredient name must not be empty")
		}
		updates["name"] = name
	}
	if input.CaloriesPer100g != nil {
		updates["calories_per_100g"] = *input.CaloriesPer100g
	}
	if input.ProteinPer100g != nil {
		updates["protein_per_100g"] = *input.ProteinPer100g
	}
	if input.CarbsPer100g != nil {
		updates["carbs_per_100g"] = *input.CarbsPer100g
	}
	if input.FatPer100g != nil {
		updates["fat_per_100g"] = *input.FatPer100g
	}
	if input.FiberPer100g != nil {
		updates["fiber_per_100g"] = *input.FiberPer100g
	}
	if input.UsdaFdcID != nil {
		updates["usda_fdc_id"] = *input.UsdaFdcID
	}
	if input.Upc != nil {
		updates["upc"] = *input.Upc
	}
	if input.Source != nil {
		updates["source"] = *input.Source
	}
	if input.SourceName != nil {
		updates["source_name"] = *input.SourceName
	}
	if len(updates) == 0 {
		return apiError(c, fiber.StatusBadRequest, "empty update")
	}

	ingredient, err := handler.repos.Ingredients.Update(ingredientID, updates)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "ingredient not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update ingredient")
	}
	return c.JSON(buildIngredientResponse(ingredient))
}

func (handler *Handler) DeleteIngredient(c *fiber.Ctx) error {
	ingredientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid ingredient id")
	}

	if err := handler.repos.Ingredients.Delete(ingredientID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "ingredient not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete ingredient")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
