package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fuelhq/fuel/internal/fooddata"
)

func (handler *Handler) SearchFoods(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		return apiError(c, fiber.StatusBadRequest, "query is required")
	}

	results, err := handler.foods.Search(query)
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "food search unavailable")
	}
	return c.JSON(results)
}

func (handler *Handler) LookupBarcode(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))
	if code == "" {
		return apiError(c, fiber.StatusBadRequest, "barcode is required")
	}

	result, err := handler.foods.LookupBarcode(code)
	if err != nil {
		if errors.Is(err, fooddata.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "food not found")
		}
		return apiError(c, fiber.StatusBadGateway, "barcode lookup unavailable")
	}
	return c.JSON(result)
}
