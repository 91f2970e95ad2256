package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"kaskelas_backend/internals/constants"
)

// OnlyRoles dipasang setelah AuthJWT.
func OnlyRoles(customMessage string, allowed ...string) fiber.Handler {
	if customMessage == "" {
		customMessage = "Forbidden: you are not authorized to access this resource"
	}
	return func(c *fiber.Ctx) error {
		roles, ok := c.Locals(LocRoles).([]string)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}
		for _, r := range roles {
			for _, a := range allowed {
				if strings.EqualFold(r, a) {
					return c.Next()
				}
			}
		}
		log.Printf("[AUTH] ditolak user=%v roles=%v path=%s", c.Locals(LocUserID), roles, c.Path())
		return fiber.NewError(fiber.StatusForbidden, customMessage)
	}
}

// TreasurerOnly: bendahara atau admin.
func TreasurerOnly() fiber.Handler {
	return OnlyRoles(constants.RoleErrorTreasurer("kas"), constants.TreasurerAndAbove...)
}
