package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func (h *Handler) GetMenuItems(c *fiber.Ctx) error {
	filter := c.Locals("inputMenuFilter").(model.MenuFilter)

	rows, total, err := h.store.ListMenuItems(c.UserContext(), filter)
	if err != nil {
		return h.fail(c, err, constants.MENU_ITEM_NOT_FOUND)
	}
	return listResponse(c, rows, total, filter.Pagination)
}

func (h *Handler) GetMenuItemById(c *fiber.Ctx) error {
	item, err := h.store.GetMenuItem(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, constants.MENU_ITEM_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func (h *Handler) CreateMenuItem(c *fiber.Ctx) error {
	input := c.Locals("inputCreateMenuItem").(model.CreateMenuItemInput)

	var item model.MenuItem
	if err := copier.CopyWithOption(&item, &input, copyOption); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if url, ok := imageUrl(c); ok {
		item.Image = url
	}

	if err := h.store.CreateMenuItem(c.UserContext(), &item); err != nil {
		return h.fail(c, err, constants.MENU_ITEM_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func (h *Handler) UpdateMenuItem(c *fiber.Ctx) error {
	input := c.Locals("inputUpdateMenuItem").(model.UpdateMenuItemInput)

	item, err := h.store.GetMenuItem(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, constants.MENU_ITEM_NOT_FOUND)
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		item.Price = input.Price.DecimalOrZero()
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Image != nil {
		item.Image = *input.Image
	}
	if url, ok := imageUrl(c); ok {
		item.Image = url
	}

	if err := h.store.UpdateMenuItem(c.UserContext(), item); err != nil {
		return h.fail(c, err, constants.MENU_ITEM_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func (h *Handler) DeleteMenuItem(c *fiber.Ctx) error {
	id := inputId(c)
	if err := h.store.DeleteMenuItem(c.UserContext(), id); err != nil {
		return h.fail(c, err, constants.MENU_ITEM_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": id})
}
