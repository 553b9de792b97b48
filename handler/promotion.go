package handler

import (
	"errors"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetPromotions(c *fiber.Ctx) error {
	p := c.Locals("inputPagination").(model.Pagination)

	rows, total, err := h.store.ListActivePromotions(c.UserContext(), p)
	if err != nil {
		return h.fail(c, err, constants.PROMOTION_NOT_FOUND)
	}
	return listResponse(c, rows, total, p)
}

func (h *Handler) GetPromotionById(c *fiber.Ctx) error {
	promo, err := h.store.GetPromotion(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, constants.PROMOTION_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, promo)
}

func (h *Handler) CreatePromotion(c *fiber.Ctx) error {
	input := c.Locals("inputCreatePromotion").(model.CreatePromotionInput)
	validUntil := c.Locals("validUntil").(time.Time)

	promo := model.Promotion{
		Title:          input.Title,
		Description:    input.Description,
		ValidUntil:     validUntil,
		DiscountAmount: input.DiscountAmount,
		Code:           input.Code,
		RequiredItem:   input.RequiredItem,
		IsActive:       true,
	}
	if err := h.store.CreatePromotion(c.UserContext(), &promo); err != nil {
		return h.fail(c, err, constants.PROMOTION_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, promo)
}

func (h *Handler) UpdatePromotion(c *fiber.Ctx) error {
	input := c.Locals("inputUpdatePromotion").(model.UpdatePromotionInput)

	promo, err := h.store.GetPromotion(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, constants.PROMOTION_NOT_FOUND)
	}

	if input.Title != nil {
		promo.Title = *input.Title
	}
	if input.Description != nil {
		promo.Description = *input.Description
	}
	if validUntil, ok := c.Locals("validUntil").(time.Time); ok {
		promo.ValidUntil = validUntil
	}
	if input.DiscountAmount != nil {
		promo.DiscountAmount = *input.DiscountAmount
	}
	if input.Code != nil {
		promo.Code = *input.Code
	}
	if input.RequiredItem != nil {
		promo.RequiredItem = *input.RequiredItem
	}
	if input.IsActive != nil {
		promo.IsActive = *input.IsActive
	}

	if err := h.store.UpdatePromotion(c.UserContext(), promo); err != nil {
		return h.fail(c, err, constants.PROMOTION_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, promo)
}

// DeletePromotion only deactivates; the promotion stays readable by id.
func (h *Handler) DeletePromotion(c *fiber.Ctx) error {
	promo, err := h.store.DeactivatePromotion(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, constants.PROMOTION_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, promo)
}

func (h *Handler) ValidatePromotion(c *fiber.Ctx) error {
	input := c.Locals("inputValidatePromotion").(model.ValidatePromotionInput)

	promo, err := h.findPromotion(c, input.Code)
	if err != nil {
		return h.fail(c, err, constants.PROMOTION_INVALID)
	}

	total := input.Total.DecimalOrZero()
	discount, err := helper.EvaluatePromotion(promo, total, model.CartLines(input.Cart), h.now())
	if err != nil {
		return h.fail(c, err, constants.PROMOTION_INVALID)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.PromotionResult{
		Promotion:  *promo,
		Discount:   discount,
		FinalTotal: total.Sub(discount),
	})
}

// findPromotion reports an unknown code as an invalid one.
func (h *Handler) findPromotion(c *fiber.Ctx, code string) (*model.Promotion, error) {
	promo, err := h.store.FindPromotionByCode(c.UserContext(), code)
	if errors.Is(err, database.ErrNotFound) {
		return nil, helper.ErrPromotionInvalid
	}
	return promo, err
}
