package validate

import (
	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePromotion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePromotionInput
		if err := parseBody(c, &input); err != nil {
			return reject(c, err)
		}

		validUntil, err := helper.ParseValidUntil(input.ValidUntil)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, err)
		}
		if _, err := helper.ParseDiscount(input.DiscountAmount); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DISCOUNT_AMOUNT, err)
		}

		input.Code = helper.NormalizeCode(input.Code)
		if input.RequiredItem == "" {
			input.RequiredItem = helper.LegacyRequiredItem(input.Code)
		}

		c.Locals("inputCreatePromotion", input)
		c.Locals("validUntil", validUntil)
		return c.Next()
	}
}

func UpdatePromotion(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdatePromotionInput
		if err := parseBody(c, &input); err != nil {
			return reject(c, err)
		}

		if input.ValidUntil != nil {
			validUntil, err := helper.ParseValidUntil(*input.ValidUntil)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, err)
			}
			c.Locals("validUntil", validUntil)
		}
		if input.DiscountAmount != nil {
			if _, err := helper.ParseDiscount(*input.DiscountAmount); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DISCOUNT_AMOUNT, err)
			}
		}
		if input.Code != nil {
			*input.Code = helper.NormalizeCode(*input.Code)
		}

		c.Locals("inputUpdatePromotion", input)
		return GetById(key)(c)
	}
}

func ValidatePromotion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ValidatePromotionInput
		if err := parseBody(c, &input); err != nil {
			return reject(c, err)
		}
		input.Code = helper.NormalizeCode(input.Code)
		c.Locals("inputValidatePromotion", input)
		return c.Next()
	}
}
