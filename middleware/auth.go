package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"facilpay-api/services/auth"
	"facilpay-api/services/token"
	"facilpay-api/types"
)

// Protected gates a route behind bearer-token authentication. On success the
// resolved identity is attached to the request context; otherwise the request
// is rejected before it reaches the handler.
func Protected(tokens *token.Service, authService *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return err
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return err
		}

		identity := authService.ValidateUser(c.UserContext(), claims.Subject)
		if identity == nil {
			return types.NewAuthError("Unauthorized")
		}

		c.Locals(LocalUser, map[string]any{
			"id":    identity.ID,
			"email": identity.Email,
		})

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", types.NewAuthError("Authorization token required")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", types.NewAuthError("Invalid authorization header format")
	}

	return parts[1], nil
}
