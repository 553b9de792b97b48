package validate

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := parseBody(c, &input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}
		c.Locals("inputLogin", input)
		return c.Next()
	}
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput
		if err := parseBody(c, &input); err != nil {
			return reject(c, err)
		}
		c.Locals("inputRegister", input)
		return c.Next()
	}
}

func VerifyToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.VerifyTokenInput
		if err := parseBody(c, &input); err != nil {
			return reject(c, err)
		}
		c.Locals("inputVerifyToken", input)
		return c.Next()
	}
}
