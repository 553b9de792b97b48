package validate

import (
	"errors"
	"reflect"
	"strconv"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "amount": a non-negative decimal, given as a JSON number or numeric string
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				return false
			}
			field = field.Elem()
		}
		d, err := decimal.NewFromString(field.String())
		return err == nil && !d.IsNegative()
	})
	return v
}

// Struct exposes the shared validator to handlers that parse their own input.
func Struct(s any) error {
	return validate.Struct(s)
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		valueKey, err := strconv.ParseUint(c.Params(key), 10, 32)
		if err != nil || valueKey == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		// Save input to context locals
		c.Locals("inputId", uint(valueKey))

		// Continue to next handler
		return c.Next()
	}
}

func Pagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.Pagination
		if err := parseQuery(c, &input); err != nil {
			return reject(c, err)
		}
		c.Locals("inputPagination", input)
		return c.Next()
	}
}

// UpdateStatus binds {status} and keeps it within allowed.
func UpdateStatus(allowed []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateStatusInput
		if err := parseBody(c, &input); err != nil {
			return reject(c, err)
		}
		if !utils.IsValidValueOfConstant(input.Status, allowed) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS, errors.New("status must be one of the allowed values"))
		}
		c.Locals("inputStatus", input)
		return c.Next()
	}
}

type inputError struct {
	message string
	err     error
}

func (e *inputError) Error() string {
	return e.err.Error()
}

func (e *inputError) Unwrap() error {
	return e.err
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return &inputError{message: constants.ERROR_INPUT, err: err}
	}
	if err := validate.Struct(out); err != nil {
		return &inputError{message: constants.VALIDATION_FAILED, err: err}
	}
	return nil
}

func parseQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return &inputError{message: constants.ERROR_INPUT, err: err}
	}
	if err := validate.Struct(out); err != nil {
		return &inputError{message: constants.VALIDATION_FAILED, err: err}
	}
	return nil
}

// reject answers 400 for a parse or validation failure.
func reject(c *fiber.Ctx, err error) error {
	var ie *inputError
	if errors.As(err, &ie) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, ie.message, ie.err)
	}
	return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
}
