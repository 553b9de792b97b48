package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/notify"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetReservations(c *fiber.Ctx) error {
	filter := c.Locals("inputReservationFilter").(model.ReservationFilter)

	rows, total, err := h.store.ListReservations(c.UserContext(), filter)
	if err != nil {
		return h.fail(c, err, constants.RESERVATION_NOT_FOUND)
	}
	return listResponse(c, rows, total, filter.Pagination)
}

func (h *Handler) GetReservationById(c *fiber.Ctx) error {
	reservation, err := h.store.GetReservation(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, constants.RESERVATION_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

func (h *Handler) GetAvailableTimes(c *fiber.Ctx) error {
	date := c.Locals("reservationDate").(utils.CustomDate)

	booked, err := h.store.BookedSlots(c.UserContext(), date)
	if err != nil {
		return h.fail(c, err, constants.RESERVATION_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.AvailableTimes{
		Date:           date.String(),
		AvailableSlots: helper.AvailableSlots(booked),
	})
}

func (h *Handler) CreateReservation(c *fiber.Ctx) error {
	input := c.Locals("inputCreateReservation").(model.CreateReservationInput)
	date := c.Locals("reservationDate").(utils.CustomDate)

	reservation := model.Reservation{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Date:            date,
		Time:            input.Time,
		Guests:          input.Guests,
		SpecialRequests: input.SpecialRequests,
		Status:          constants.STATUS_PENDING,
	}
	if err := h.store.CreateReservation(c.UserContext(), &reservation); err != nil {
		return h.fail(c, err, constants.RESERVATION_NOT_FOUND)
	}

	h.publish(notify.EventReservationCreated, reservation)
	h.mailer.SendReservationConfirmation(reservation.Email, utils.ReservationEmailData{
		ID:              reservation.ID,
		Name:            reservation.Name,
		Date:            reservation.Date.String(),
		Time:            reservation.Time,
		Guests:          reservation.Guests,
		SpecialRequests: reservation.SpecialRequests,
	})
	return utils.SuccessResponse(c, fiber.StatusCreated, reservation)
}

func (h *Handler) UpdateReservationStatus(c *fiber.Ctx) error {
	input := c.Locals("inputStatus").(model.UpdateStatusInput)

	reservation, err := h.store.UpdateReservationStatus(c.UserContext(), inputId(c), input.Status)
	if err != nil {
		return h.fail(c, err, constants.RESERVATION_NOT_FOUND)
	}

	h.publish(notify.EventReservationUpdated, reservation)
	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}
