package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"github.com/elitesugar/elitesugar-backend/internal/repository"
)

// AuthMiddleware authenticates the "Authorization: Token <key>" scheme by
// resolving the key against stored tokens. The resolved account is stashed in
// request locals for downstream handlers.
func AuthMiddleware(tokenRepo *repository.TokenRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authorization header is required"))
		}

		if !strings.HasPrefix(authHeader, "Token ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
		}

		key := strings.TrimPrefix(authHeader, "Token ")

		token, err := tokenRepo.GetByKey(key)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		if !token.Account.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("This account has been deactivated"))
		}

		c.Locals("accountID", token.Account.ID)
		c.Locals("accountEmail", token.Account.Email)
		c.Locals("membership", token.Account.MembershipType)
		c.Locals("isStaff", token.Account.IsStaff)

		return c.Next()
	}
}

// AdminMiddleware gates staff-only routes; it runs after AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isStaff, ok := c.Locals("isStaff").(bool)
		if !ok || !isStaff {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Staff access required"))
		}
		return c.Next()
	}
}
