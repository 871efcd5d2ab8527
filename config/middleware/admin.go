package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sujal2120/DailyFlow/models"
	"github.com/Sujal2120/DailyFlow/pkg/paseto"
)

// AdminMiddleware requires an authenticated admin session. It must run
// after AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*paseto.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
		}

		if claims.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied. Admin privileges required"})
		}

		return c.Next()
	}
}
