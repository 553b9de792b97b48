package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func GetMenuItems() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.MenuFilter
		if err := parseQuery(c, &input); err != nil {
			return reject(c, err)
		}
		c.Locals("inputMenuFilter", input)
		return c.Next()
	}
}

// CreateMenuItem accepts JSON or multipart form; the image file itself is handled by
// Image.
func CreateMenuItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMenuItemInput
		if err := parseBody(c, &input); err != nil {
			return reject(c, err)
		}
		c.Locals("inputCreateMenuItem", input)
		return c.Next()
	}
}

func UpdateMenuItem(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateMenuItemInput
		if err := parseBody(c, &input); err != nil {
			return reject(c, err)
		}
		c.Locals("inputUpdateMenuItem", input)
		return GetById(key)(c)
	}
}
