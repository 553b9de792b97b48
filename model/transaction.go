package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	OrderNumber    string          `gorm:"uniqueIndex;size:40;not null" json:"orderNumber"`
	Items          CartItems       `gorm:"type:jsonb;not null" json:"items"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"tax"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"discountAmount"`
	PromoCode      *string         `gorm:"size:50" json:"promoCode"`
	Status         string          `gorm:"size:20;not null;default:'pending';index" json:"status"`
	PaymentMethod  string          `gorm:"size:40;not null" json:"paymentMethod"`
	CustomerName   string          `gorm:"size:150;not null" json:"customerName"`
	CustomerEmail  string          `gorm:"size:255;not null" json:"customerEmail"`
	CreatedAt      time.Time       `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type Transactions []Transaction

// CartItems is the cart snapshot stored as a JSONB column.
type CartItems []CartLine

func (c CartItems) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *CartItems) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*c = CartItems{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported scan type for CartItems")
	}
	return json.Unmarshal(data, c)
}

type CreateTransactionInput struct {
	Cart           []CartLineInput `json:"cart" validate:"required,min=1,dive"`
	Subtotal       Amount          `json:"subtotal" validate:"amount"`
	Tax            Amount          `json:"tax" validate:"omitempty,amount"` // derived from TAX_RATE when empty
	Total          Amount          `json:"total" validate:"amount"`
	DiscountAmount Amount          `json:"discountAmount" validate:"omitempty,amount"`
	PromoCode      string          `json:"promoCode" validate:"omitempty,max=50"`
	PaymentMethod  string          `json:"paymentMethod" validate:"required,max=40"`
	Name           string          `json:"name" validate:"required,min=1,max=150"`
	Email          string          `json:"email" validate:"required,email"`
}

type TransactionFilter struct {
	Pagination
	Status *string `json:"status" query:"status"`
}
