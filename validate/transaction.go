package validate

import (
	"errors"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func CreateTransaction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTransactionInput
		if err := parseBody(c, &input); err != nil {
			if isAmountError(err) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PRICE_VALUES, err)
			}
			return reject(c, err)
		}
		c.Locals("inputCreateTransaction", input)
		return c.Next()
	}
}

func GetTransactions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.TransactionFilter
		if err := parseQuery(c, &input); err != nil {
			return reject(c, err)
		}
		if input.Status != nil && *input.Status != "" && !utils.IsValidValueOfConstant(*input.Status, constants.TRANSACTION_STATUSES) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS, errors.New("unknown transaction status"))
		}
		c.Locals("inputTransactionFilter", input)
		return c.Next()
	}
}

// isAmountError reports whether any failed rule is the "amount" check.
func isAmountError(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == "amount" {
			return true
		}
	}
	return false
}
