package handler

import (
	"errors"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Login(c *fiber.Ctx) error {
	input := c.Locals("inputLogin").(model.LoginInput)

	user, err := h.store.FindUserByEmail(c.UserContext(), input.Email)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return h.fail(c, err, constants.INVALID_CREDENTIALS)
	}
	if user == nil || !helper.CheckPasswordHash(input.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("email or password does not match"))
	}

	token, err := h.tokens.GenerateAccessToken(model.TokenClaim{
		UserId:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  h.now().Add(h.tokens.TTL()),
	})

	h.log.Info("user logged in", "userId", user.ID)
	return c.JSON(fiber.Map{
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}

func (h *Handler) Register(c *fiber.Ctx) error {
	input := c.Locals("inputRegister").(model.RegisterInput)

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	user := model.User{Email: input.Email, Password: hash, Name: input.Name}
	if err := h.store.CreateUser(c.UserContext(), &user); err != nil {
		return h.fail(c, err, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func (h *Handler) VerifyToken(c *fiber.Ctx) error {
	input := c.Locals("inputVerifyToken").(model.VerifyTokenInput)

	claims, err := h.tokens.ParseToken(input.Token)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}
	return c.JSON(fiber.Map{
		"message": "token is valid",
		"user":    claims,
	})
}
