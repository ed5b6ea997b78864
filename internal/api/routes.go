package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	meals := app.Group("/meals", handler.AuthRequired)
	meals.Get("/day/:date", handler.GetDailySummary)
	meals.Get("/history", handler.GetMealHistory)
	meals.Post("/", handler.CreateMeal)
	meals.Patch("/:id/portion", handler.UpdateMealPortion)
	meals.Delete("/:id", handler.DeleteMeal)

	ingredients := app.Group("/ingredients", handler.AuthRequired)
	ingredients.Get("/", handler.GetIngredients)
	ingredients.Post("/", handler.CreateIngredient)
	ingredients.Patch("/:id", handler.UpdateIngredient)
	ingredients.Delete("/:id", handler.DeleteIngredient)

	recipes := app.Group("/recipes", handler.AuthRequired)
	recipes.Get("/", handler.GetRecipes)
	recipes.Post("/", handler.CreateRecipe)
	recipes.Get("/:id", handler.GetRecipe)
	recipes.Patch("/:id", handler.RenameRecipe)
	recipes.Delete("/:id", handler.DeleteRecipe)
	recipes.Post("/:id/ingredients", handler.AddRecipeIngredient)
	recipes.Patch("/:id/ingredients/:ingredientId", handler.UpdateRecipeIngredient)
	recipes.Delete("/:id/ingredients/:ingredientId", handler.DeleteRecipeIngredient)
	recipes.Post("/:id/log", handler.LogRecipe)
	recipes.Post("/:id/restore-from-meal/:mealId", handler.RestoreFromMeal)

	profile := app.Group("/profile", handler.AuthRequired)
	profile.Get("/", handler.GetProfile)
	profile.Patch("/", handler.UpdateProfile)

	dayTypes := app.Group("/day-types", handler.AuthRequired)
	dayTypes.Get("/", handler.GetDayTypes)
	dayTypes.Post("/", handler.CreateDayType)
	dayTypes.Patch("/:id", handler.UpdateDayType)
	dayTypes.Delete("/:id", handler.DeleteDayType)
	dayTypes.Put("/log/:date", handler.AssignDayType)
	dayTypes.Delete("/log/:date", handler.UnassignDayType)

	usda := app.Group("/usda", handler.AuthRequired)
	usda.Get("/search", handler.SearchFoods)
	usda.Get("/upc/:code", handler.LookupBarcode)
}
