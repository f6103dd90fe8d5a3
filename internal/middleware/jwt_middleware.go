package middleware

import (
	"log/slog"
	"strings"

	"catalog/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware that rejects requests without a valid
// bearer token. The token subject is stored in Locals under "subject".
func AuthRequired(tokens *auth.TokenManager, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON("authorization header is required")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON("authorization header format must be 'Bearer <token>'")
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			logger.WarnContext(c.UserContext(), "JWT validation failed", slog.String("error", err.Error()))
			return c.Status(fiber.StatusUnauthorized).JSON("invalid or expired token")
		}

		c.Locals("subject", claims["sub"])
		return c.Next()
	}
}
