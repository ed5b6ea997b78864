package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fuelhq/fuel/internal/auth"
)

const contextIdentityKey = "identity"

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	identity, err := handler.verifier.Verify(token)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextIdentityKey, identity)
	return c.Next()
}

func currentIdentity(c *fiber.Ctx) (auth.Identity, bool) {
	identity, ok := c.Locals(contextIdentityKey).(auth.Identity)
	return identity, ok
}
