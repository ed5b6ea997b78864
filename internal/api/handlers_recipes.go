package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fuelhq/fuel/internal/db"
	"github.com/fuelhq/fuel/internal/models"
)

func (handler *Handler) GetRecipes(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipes, err := handler.repos.Recipes.ListByUser(identity.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipes")
	}

	recipeIDs := make([]uint, 0, len(recipes))
	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID)
	}
	ingredients, err := handler.repos.Recipes.ListIngredientsForRecipes(recipeIDs)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe ingredients")
	}
	byRecipe := make(map[uint][]models.RecipeIngredient, len(recipes))
	for _, ingredient := range ingredients {
		byRecipe[ingredient.RecipeID] = append(byRecipe[ingredient.RecipeID], ingredient)
	}

	responses := make([]recipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, buildRecipeResponse(recipe, byRecipe[recipe.ID]))
	}
	return c.JSON(responses)
}

func (handler *Handler) CreateRecipe(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := recipeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "recipe name is required")
	}
	servings := input.Servings
	if servings <= 0 {
		servings = 1
	}

	recipe := models.Recipe{UserID: identity.UserID, Name: name, Servings: servings}
	if err := handler.repos.Recipes.Create(&recipe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recipe")
	}
	return c.Status(fiber.StatusCreated).JSON(buildRecipeResponse(recipe, nil))
}

func (handler *Handler) GetRecipe(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid recipe id")
	}

	recipe, found, err := handler.repos.Recipes.FindByIDForUser(recipeID, identity.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "recipe not found")
	}

	ingredients, err := handler.repos.Recipes.ListIngredients(recipe.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe ingredients")
	}
	return c.JSON(buildRecipeResponse(recipe, ingredients))
}

func (handler *Handler) RenameRecipe(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid recipe id")
	}

	input := recipeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "empty update")
	}

	recipe, found, err := handler.repos.Recipes.FindByIDForUser(recipeID, identity.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "recipe not found")
	}

	if err := handler.repos.Recipes.UpdateName(recipe.ID, name); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update recipe")
	}
	recipe.Name = name

	ingredients, err := handler.repos.Recipes.ListIngredients(recipe.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe ingredients")
	}
	return c.JSON(buildRecipeResponse(recipe, ingredients))
}

func (handler *Handler) DeleteRecipe(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid recipe id")
	}

	_, found, err := handler.repos.Recipes.FindByIDForUser(recipeID, identity.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "recipe not found")
	}

	if err := handler.repos.Recipes.DeleteWithIngredients(recipeID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete recipe")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) AddRecipeIngredient(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid recipe id")
	}

	input := recipeIngredientInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.FoodName == nil || strings.TrimSpace(*input.FoodName) == "" {
		return apiError(c, fiber.StatusBadRequest, "food name is required")
	}
	if input.Quantity == nil || *input.Quantity < 0 {
		return apiError(c, fiber.StatusBadRequest, "quantity must not be negative")
	}

	_, found, err := handler.repos.Recipes.FindByIDForUser(recipeID, identity.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "recipe not found")
	}

	ingredient := models.RecipeIngredient{
		RecipeID: recipeID,
		FoodName: strings.TrimSpace(*input.FoodName),
		Quantity: *input.Quantity,
		Unit:     "g",
		Checked:  true,
	}
	if input.Unit != nil && strings.TrimSpace(*input.Unit) != "" {
		ingredient.Unit = strings.TrimSpace(*input.Unit)
	}
	if input.Checked != nil {
		ingredient.Checked = *input.Checked
	}
	if input.CaloriesPerUnit != nil {
		ingredient.CaloriesPerUnit = *input.CaloriesPerUnit
	}
	if input.ProteinPerUnit != nil {
		ingredient.ProteinPerUnit = *input.ProteinPerUnit
	}
	if input.CarbsPerUnit != nil {
		ingredient.CarbsPerUnit = *input.CarbsPerUnit
	}
	if input.FatPerUnit != nil {
		ingredient.FatPerUnit = *input.FatPerUnit
	}
	if input.FiberPerUnit != nil {
		ingredient.FiberPerUnit = *input.FiberPerUnit
	}
	ingredient.UsdaFdcID = input.UsdaFdcID

	if err := handler.repos.Recipes.AddIngredient(&ingredient); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to add ingredient")
	}
	return c.Status(fiber.StatusCreated).JSON(buildRecipeIngredientResponse(ingredient))
}

func (handler *Handler) UpdateRecipeIngredient(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid recipe id")
	}
	ingredientID, err := parseIDParam(c, "ingredientId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid ingredient id")
	}

	input := recipeIngredientInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]any{}
	if input.FoodName != nil {
		name := strings.TrimSpace(*input.FoodName)
		if name == "" {
			return apiError(c, fiber.StatusBadRequest, "food name must not be empty")
		}
		updates["food_name"] = name
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return apiError(c, fiber.StatusBadRequest, "quantity must not be negative")
		}
		updates["quantity"] = *input.Quantity
	}
	if input.Unit != nil {
		updates["unit"] = strings.TrimSpace(*input.Unit)
	}
	if input.Checked != nil {
		updates["checked"] = *input.Checked
	}
	if input.CaloriesPerUnit != nil {
		updates["calories_per_unit"] = *input.CaloriesPerUnit
	}
	if input.ProteinPerUnit != nil {
		updates["protein_per_unit"] = *input.ProteinPerUnit
	}
	if input.CarbsPerUnit != nil {
		updates["carbs_per_unit"] = *input.CarbsPerUnit
	}
	if input.FatPerUnit != nil {
		updates["fat_per_unit"] = *input.FatPerUnit
	}
	if input.FiberPerUnit != nil {
		updates["fiber_per_unit"] = *input.FiberPerUnit
	}
	if input.UsdaFdcID != nil {
		updates["usda_fdc_id"] = *input.UsdaFdcID
	}
	if len(updates) == 0 {
		return apiError(c, fiber.StatusBadRequest, "empty update")
	}

	_, found, err := handler.repos.Recipes.FindByIDForUser(recipeID, identity.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "recipe not found")
	}

	ingredient, err := handler.repos.Recipes.UpdateIngredient(ingredientID, recipeID, updates)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "ingredient not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update ingredient")
	}
	return c.JSON(buildRecipeIngredientResponse(ingredient))
}

func (handler *Handler) DeleteRecipeIngredient(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid recipe id")
	}
	ingredientID, err := parseIDParam(c, "ingredientId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid ingredient id")
	}

	_, found, err := handler.repos.Recipes.FindByIDForUser(recipeID, identity.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "recipe not found")
	}

	if err := handler.repos.Recipes.DeleteIngredient(ingredientID, recipeID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "ingredient not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete ingredient")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func buildRecipeIngredientResponse(ingredient models.RecipeIngredient) recipeIngredientResponse {
	return recipeIngredientResponse{
		ID:              ingredient.ID,
		FoodName:        ingredient.FoodName,
		Quantity:        ingredient.Quantity,
		Unit:            ingredient.Unit,
		Checked:         ingredient.Checked,
		CaloriesPerUnit: ingredient.CaloriesPerUnit,
		ProteinPerUnit:  ingredient.ProteinPerUnit,
		CarbsPerUnit:    ingredient.CarbsPerUnit,
		FatPerUnit:      ingredient.FatPerUnit,
		FiberPerUnit:    ingredient.FiberPerUnit,
		UsdaFdcID:       ingredient.UsdaFdcID,
	}
}
