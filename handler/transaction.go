package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/notify"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func (h *Handler) GetTransactions(c *fiber.Ctx) error {
	filter := c.Locals("inputTransactionFilter").(model.TransactionFilter)

	rows, total, err := h.store.ListTransactions(c.UserContext(), filter)
	if err != nil {
		return h.fail(c, err, constants.TRANSACTION_NOT_FOUND)
	}
	return listResponse(c, rows, total, filter.Pagination)
}

func (h *Handler) GetTransactionById(c *fiber.Ctx) error {
	txn, err := h.store.GetTransaction(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, constants.TRANSACTION_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, txn)
}

// CreateTransaction records an order. With a promo code the discount is recomputed
// against the subtotal and the total follows from it.
func (h *Handler) CreateTransaction(c *fiber.Ctx) error {
	input := c.Locals("inputCreateTransaction").(model.CreateTransactionInput)
	now := h.now()
	cart := model.CartLines(input.Cart)

	subtotal := input.Subtotal.DecimalOrZero()
	tax := input.Tax.DecimalOrZero()
	if input.Tax.IsZero() {
		tax = subtotal.Mul(h.taxRate).Round(2)
	}
	total := input.Total.DecimalOrZero()
	discount := input.DiscountAmount.DecimalOrZero()

	var promoCode *string
	if input.PromoCode != "" {
		promo, err := h.findPromotion(c, helper.NormalizeCode(input.PromoCode))
		if err != nil {
			return h.fail(c, err, constants.PROMOTION_INVALID)
		}
		discount, err = helper.EvaluatePromotion(promo, subtotal, cart, now)
		if err != nil {
			return h.fail(c, err, constants.PROMOTION_INVALID)
		}
		total = decimal.Max(decimal.Zero, subtotal.Add(tax).Sub(discount))
		promoCode = &promo.Code
	}

	txn := model.Transaction{
		OrderNumber:    helper.GenerateOrderNumber(now),
		Items:          cart,
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          total,
		DiscountAmount: discount,
		PromoCode:      promoCode,
		Status:         constants.STATUS_PENDING,
		PaymentMethod:  input.PaymentMethod,
		CustomerName:   input.Name,
		CustomerEmail:  input.Email,
	}
	if err := h.store.CreateTransaction(c.UserContext(), &txn); err != nil {
		return h.fail(c, err, constants.TRANSACTION_NOT_FOUND)
	}

	h.publish(notify.EventTransactionCreated, txn)
	h.mailer.SendOrderConfirmation(txn.CustomerEmail, orderEmail(txn))
	return utils.SuccessResponse(c, fiber.StatusCreated, txn)
}

func (h *Handler) UpdateTransactionStatus(c *fiber.Ctx) error {
	input := c.Locals("inputStatus").(model.UpdateStatusInput)

	txn, err := h.store.UpdateTransactionStatus(c.UserContext(), inputId(c), input.Status)
	if err != nil {
		return h.fail(c, err, constants.TRANSACTION_NOT_FOUND)
	}

	h.publish(notify.EventTransactionUpdated, txn)
	return utils.SuccessResponse(c, fiber.StatusOK, txn)
}

// GetTransactionQR renders the order number as a PNG QR code.
func (h *Handler) GetTransactionQR(c *fiber.Ctx) error {
	txn, err := h.store.GetTransaction(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, constants.TRANSACTION_NOT_FOUND)
	}
	png, err := utils.GenerateQRCode(txn.OrderNumber, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func orderEmail(txn model.Transaction) utils.OrderEmailData {
	lines := make([]utils.OrderEmailLine, 0, len(txn.Items))
	for _, item := range txn.Items {
		lines = append(lines, utils.OrderEmailLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price.StringFixed(2),
		})
	}
	data := utils.OrderEmailData{
		OrderNumber:   txn.OrderNumber,
		CustomerName:  txn.CustomerName,
		Items:         lines,
		Subtotal:      txn.Subtotal.StringFixed(2),
		Tax:           txn.Tax.StringFixed(2),
		Discount:      txn.DiscountAmount.StringFixed(2),
		Total:         txn.Total.StringFixed(2),
		PaymentMethod: txn.PaymentMethod,
	}
	if txn.PromoCode != nil {
		data.PromoCode = *txn.PromoCode
	}
	return data
}
