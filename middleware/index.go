package middleware

import (
	"errors"
	"strings"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// publicPaths under /api that do not need a token.
var publicPaths = map[string]bool{
	"/api/auth/login":    true,
	"/api/auth/register": true,
}

// Protected guards every /api route except publicPaths. The token comes from the
// Authorization header, or the access_token cookie set at login.
func Protected(tokens *helper.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions || publicPaths[strings.TrimSuffix(c.Path(), "/")] {
			return c.Next()
		}

		token := bearerToken(c)
		if token == "" {
			token = c.Cookies("access_token")
		}
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.AUTH_REQUIRED, errors.New("no token"))
		}

		claims, err := tokens.ParseToken(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}

// QueryToken authenticates websocket upgrades, where browsers cannot set headers.
func QueryToken(tokens *helper.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Query("token")
		if token == "" {
			token = bearerToken(c)
		}
		claims, err := tokens.ParseToken(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}
		c.Locals("claims", claims)
		return c.Next()
	}
}

func Claims(c *fiber.Ctx) *model.TokenClaim {
	claims, _ := c.Locals("claims").(*model.TokenClaim)
	return claims
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}
