package middleware

import (
	"strings"

	"go-order-tracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const (
	localUsername = "username"
	systemActor   = "system"
)

// RequireAuth validates the bearer token and stores the operator name in the
// request context. A nil signer means auth is disabled and every request passes.
func RequireAuth(signer *jwt.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if signer == nil {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := signer.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals(localUsername, claims.Username)
		return c.Next()
	}
}

// Actor is the authenticated operator, or "system" when auth is off.
func Actor(c *fiber.Ctx) string {
	if name, ok := c.Locals(localUsername).(string); ok && name != "" {
		return name
	}
	return systemActor
}
