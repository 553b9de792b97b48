package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/notify"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func (h *Handler) GetEvents(c *fiber.Ctx) error {
	p := c.Locals("inputPagination").(model.Pagination)

	rows, total, err := h.store.ListEvents(c.UserContext(), p)
	if err != nil {
		return h.fail(c, err, constants.EVENT_NOT_FOUND)
	}
	return listResponse(c, rows, total, p)
}

func (h *Handler) GetEventById(c *fiber.Ctx) error {
	event, err := h.store.GetEvent(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, constants.EVENT_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	input := c.Locals("inputCreateEvent").(model.CreateEventInput)

	var event model.Event
	if err := copier.CopyWithOption(&event, &input, copyOption); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, err)
	}
	if url, ok := imageUrl(c); ok {
		event.Image = url
	}

	if err := h.store.CreateEvent(c.UserContext(), &event); err != nil {
		return h.fail(c, err, constants.EVENT_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, event)
}

func (h *Handler) UpdateEvent(c *fiber.Ctx) error {
	input := c.Locals("inputUpdateEvent").(model.UpdateEventInput)

	event, err := h.store.GetEvent(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, constants.EVENT_NOT_FOUND)
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Date != nil {
		date, err := utils.ParseDate(*input.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, err)
		}
		event.Date = date
	}
	if input.Time != nil {
		event.Time = *input.Time
	}
	if input.Capacity != nil {
		event.Capacity = input.Capacity
	}
	if input.Image != nil {
		event.Image = *input.Image
	}
	if url, ok := imageUrl(c); ok {
		event.Image = url
	}

	if err := h.store.UpdateEvent(c.UserContext(), event); err != nil {
		return h.fail(c, err, constants.EVENT_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	id := inputId(c)
	if err := h.store.DeleteEvent(c.UserContext(), id); err != nil {
		return h.fail(c, err, constants.EVENT_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": id})
}

func (h *Handler) CreateRSVP(c *fiber.Ctx) error {
	input := c.Locals("inputCreateRSVP").(model.CreateRSVPInput)

	rsvp := model.EventRSVP{
		EventId: inputId(c),
		Name:    input.Name,
		Email:   input.Email,
		Guests:  input.Guests,
		Status:  constants.STATUS_PENDING,
	}
	if err := h.store.CreateRSVP(c.UserContext(), &rsvp); err != nil {
		return h.fail(c, err, constants.EVENT_NOT_FOUND)
	}

	h.publish(notify.EventRSVPCreated, rsvp)
	return utils.SuccessResponse(c, fiber.StatusCreated, rsvp)
}

func (h *Handler) GetRSVPs(c *fiber.Ctx) error {
	filter := c.Locals("inputRSVPFilter").(model.RSVPFilter)

	rows, total, err := h.store.ListRSVPs(c.UserContext(), filter)
	if err != nil {
		return h.fail(c, err, constants.RSVP_NOT_FOUND)
	}
	return listResponse(c, rows, total, filter.Pagination)
}

func (h *Handler) GetRSVPById(c *fiber.Ctx) error {
	rsvp, err := h.store.GetRSVP(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, constants.RSVP_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rsvp)
}

func (h *Handler) UpdateRSVPStatus(c *fiber.Ctx) error {
	input := c.Locals("inputStatus").(model.UpdateStatusInput)

	rsvp, err := h.store.UpdateRSVPStatus(c.UserContext(), inputId(c), input.Status)
	if err != nil {
		return h.fail(c, err, constants.RSVP_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rsvp)
}

func (h *Handler) DeleteRSVP(c *fiber.Ctx) error {
	id := inputId(c)
	if err := h.store.DeleteRSVP(c.UserContext(), id); err != nil {
		return h.fail(c, err, constants.RSVP_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": id})
}
