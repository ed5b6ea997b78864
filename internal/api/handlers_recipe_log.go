package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fuelhq/fuel/internal/models"
	"github.com/fuelhq/fuel/internal/services"
)

// LogRecipe turns a recipe into a logged meal. The caller supplies the
// quantities actually used plus the cooked batch weight and the eaten portion;
// nutrients are scaled by portion/cooked and the used composition is
// snapshotted on the meal so the template can be restored later.
func (handler *Handler) LogRecipe(c *fiber.Ctx) error {
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

	input := logRecipeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(input.Ingredients) == 0 {
		return apiError(c, fiber.StatusBadRequest, "ingredients are required")
	}
	if !models.IsValidMealType(input.MealType) {
		return apiError(c, fiber.StatusBadRequest, "invalid meal type")
	}
	day, err := services.ParseDay(input.LoggedDate, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	overrides := make([]services.IngredientOverride, 0, len(input.Ingredients))
	ingredientIDs := make([]uint, 0, len(input.Ingredients))
	for _, ref := range input.Ingredients {
		if ref.Quantity < 0 {
			return apiError(c, fiber.StatusBadRequest, "quantity must not be negative")
		}
		overrides = append(overrides, services.IngredientOverride{IngredientID: ref.IngredientID, Quantity: ref.Quantity})
		ingredientIDs = append(ingredientIDs, ref.IngredientID)
	}

	templateRows, err := handler.repos.Recipes.ListIngredientsByIDs(recipeID, ingredientIDs)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe ingredients")
	}
	byID := services.IngredientsByID(templateRows)

	totals, rawWeight := services.ComputeOverrideTotals(byID, overrides)
	scale := services.PortionScaleFactor(input.TotalCookedWeight, input.PortionWeight)
	rounded := totals.Scale(scale).Rounded()

	meal := models.Meal{
		UserID:     identity.UserID,
		LoggedDate: day,
		MealType:   input.MealType,
		Name:       recipe.Name,
		Calories:   rounded.Calories,
		ProteinG:   rounded.Protein,
		CarbsG:     rounded.Carbs,
		FatG:       rounded.Fat,
		FiberG:     rounded.Fiber,
		Notes:      input.Notes,
		RecipeID:   &recipe.ID,
	}
	raw := services.RoundMacro(rawWeight)
	meal.RawWeight = &raw
	if input.TotalCookedWeight != nil {
		cooked := services.RoundMacro(*input.TotalCookedWeight)
		meal.TotalCookedWeight = &cooked
	}
	if input.PortionWeight != nil {
		portion := services.RoundMacro(*input.PortionWeight)
		meal.PortionWeight = &portion
	}

	if err := handler.repos.Meals.Create(&meal); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create meal")
	}

	snapshots := services.BuildSnapshots(byID, overrides, meal.ID)
	if err := handler.repos.Meals.InsertIngredientSnapshots(snapshots); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to snapshot ingredients")
	}

	stickyUpdates := map[string]any{"last_meal_type": input.MealType}
	if input.TotalCookedWeight != nil && *input.TotalCookedWeight > 0 {
		stickyUpdates["last_cooked_weight"] = services.RoundMacro(*input.TotalCookedWeight)
	}
	if err := handler.repos.Recipes.UpdateStickyDefaults(recipe.ID, stickyUpdates); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update recipe defaults")
	}

	return c.Status(fiber.StatusCreated).JSON(buildMealResponse(meal))
}

// RestoreFromMeal rewinds a recipe template to the composition captured when
// the given meal was logged.
func (handler *Handler) RestoreFromMeal(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid recipe id")
	}
	mealID, err := parseIDParam(c, "mealId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}

	recipe, found, err := handler.repos.Recipes.FindByIDForUser(recipeID, identity.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "recipe not found")
	}

	meal, found, err := handler.repos.Meals.FindLoggedFromRecipe(mealID, recipeID, identity.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch meal")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "meal not found")
	}

	snapshots, err := handler.repos.Meals.ListIngredientSnapshots(meal.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch meal ingredients")
	}
	current, err := handler.repos.Recipes.ListIngredients(recipeID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe ingredients")
	}

	plan := services.BuildRestorePlan(recipeID, current, snapshots)
	if err := handler.repos.Recipes.UncheckIngredients(plan.UncheckIDs); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to restore recipe")
	}
	for _, reset := range plan.QuantityResets {
		if err := handler.repos.Recipes.ResetIngredientQuantity(reset.IngredientID, reset.Quantity); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to restore recipe")
		}
	}
	for i := range plan.Inserts {
		if err := handler.repos.Recipes.AddIngredient(&plan.Inserts[i]); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to restore recipe")
		}
	}

	restored, err := handler.repos.Recipes.ListIngredients(recipeID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe ingredients")
	}
	return c.JSON(buildRecipeResponse(recipe, restored))
}
