package validate

import (
	"errors"
	"fmt"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReservationInput
		if err := parseBody(c, &input); err != nil {
			return reject(c, err)
		}

		date, err := utils.ParseDate(input.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, err)
		}
		if !helper.IsTimeSlot(input.Time) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TIME_SLOT, fmt.Errorf("%s is not one of the bookable slots", input.Time))
		}

		c.Locals("inputCreateReservation", input)
		c.Locals("reservationDate", date)
		return c.Next()
	}
}

func GetReservations() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ReservationFilter
		if err := parseQuery(c, &input); err != nil {
			return reject(c, err)
		}
		if input.Date != nil && *input.Date != "" {
			if _, err := utils.ParseDate(*input.Date); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, err)
			}
		}
		if input.Status != nil && *input.Status != "" && !utils.IsValidValueOfConstant(*input.Status, constants.RESERVATION_STATUSES) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS, errors.New("unknown reservation status"))
		}
		c.Locals("inputReservationFilter", input)
		return c.Next()
	}
}

// AvailableTimes requires ?date=YYYY-MM-DD.
func AvailableTimes() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("date")
		if raw == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATE_REQUIRED, errors.New("missing date"))
		}
		date, err := utils.ParseDate(raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, err)
		}
		c.Locals("reservationDate", date)
		return c.Next()
	}
}
