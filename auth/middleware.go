package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys under which the resolved identity travels with the request.
const (
	ProfileIDKey   = "profile_id"
	ProfileNameKey = "profile_name"
)

// Middleware validates the bearer token of incoming requests and injects the
// resolved profile into the request context for downstream handlers. An
// unresolvable identity terminates the request with 401; no process-wide
// identity state exists.
func Middleware(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
		}

		// Expecting the standard "Bearer <token>" format
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims, err := ValidateToken(secret, tokenStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
		}

		c.Locals(ProfileIDKey, claims.ProfileID)
		c.Locals(ProfileNameKey, claims.Name)
		return c.Next()
	}
}

// ProfileID extracts the resolved identity from the request context. Empty
// means no identity was resolved.
func ProfileID(c *fiber.Ctx) string {
	id, _ := c.Locals(ProfileIDKey).(string)
	return id
}
