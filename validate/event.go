package validate

import (
	"errors"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEventInput
		if err := parseBody(c, &input); err != nil {
			return reject(c, err)
		}
		c.Locals("inputCreateEvent", input)
		return c.Next()
	}
}

func UpdateEvent(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateEventInput
		if err := parseBody(c, &input); err != nil {
			return reject(c, err)
		}
		c.Locals("inputUpdateEvent", input)
		return GetById(key)(c)
	}
}

func CreateRSVP(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRSVPInput
		if err := parseBody(c, &input); err != nil {
			return reject(c, err)
		}
		c.Locals("inputCreateRSVP", input)
		return GetById(key)(c)
	}
}

func GetRSVPs() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RSVPFilter
		if err := parseQuery(c, &input); err != nil {
			return reject(c, err)
		}
		if input.Status != nil && *input.Status != "" && !utils.IsValidValueOfConstant(*input.Status, constants.RSVP_STATUSES) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS, errors.New("unknown RSVP status"))
		}
		c.Locals("inputRSVPFilter", input)
		return c.Next()
	}
}
