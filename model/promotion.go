package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Promotion struct {
	DTO
	Title          string    `gorm:"size:200;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	ValidUntil     time.Time `gorm:"not null;index" json:"validUntil"`
	DiscountAmount string    `gorm:"size:20;not null" json:"discountAmount"` // "20%" or "5.00"
	Code           string    `gorm:"uniqueIndex;size:50;not null" json:"code"`
	RequiredItem   string    `gorm:"size:100" json:"requiredItem"`
	IsActive       bool      `gorm:"not null;default:true;index" json:"isActive"`
}

type Promotions []Promotion

type CreatePromotionInput struct {
	Title          string `json:"title" form:"title" validate:"required,min=2,max=200"`
	Description    string `json:"description" form:"description" validate:"omitempty,max=2000"`
	ValidUntil     string `json:"validUntil" form:"validUntil" validate:"required"`
	DiscountAmount string `json:"discountAmount" form:"discountAmount" validate:"required,max=20"`
	Code           string `json:"code" form:"code" validate:"required,min=3,max=50,alphanum"`
	RequiredItem   string `json:"requiredItem" form:"requiredItem" validate:"omitempty,max=100"`
}

type UpdatePromotionInput struct {
	Title          *string `json:"title" form:"title" validate:"omitempty,min=2,max=200"`
	Description    *string `json:"description" form:"description" validate:"omitempty,max=2000"`
	ValidUntil     *string `json:"validUntil" form:"validUntil" validate:"omitempty"`
	DiscountAmount *string `json:"discountAmount" form:"discountAmount" validate:"omitempty,max=20"`
	Code           *string `json:"code" form:"code" validate:"omitempty,min=3,max=50,alphanum"`
	RequiredItem   *string `json:"requiredItem" form:"requiredItem" validate:"omitempty,max=100"`
	IsActive       *bool   `json:"isActive" form:"isActive"`
}

type CartLine struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type CartLineInput struct {
	ID       uint   `json:"id"`
	Name     string `json:"name" validate:"required,max=150"`
	Price    Amount `json:"price" validate:"omitempty,amount"`
	Quantity int    `json:"quantity" validate:"omitempty,gte=0"`
}

type ValidatePromotionInput struct {
	Code  string          `json:"code" validate:"required,max=50"`
	Total Amount          `json:"total" validate:"amount"`
	Cart  []CartLineInput `json:"cart" validate:"omitempty,dive"`
}

type PromotionResult struct {
	Promotion  Promotion       `json:"promotion"`
	Discount   decimal.Decimal `json:"discount"`
	FinalTotal decimal.Decimal `json:"finalTotal"`
}

func (in CartLineInput) CartLine() CartLine {
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	return CartLine{ID: in.ID, Name: in.Name, Price: in.Price.DecimalOrZero(), Quantity: qty}
}

func CartLines(in []CartLineInput) []CartLine {
	lines := make([]CartLine, 0, len(in))
	for _, l := range in {
		lines = append(lines, l.CartLine())
	}
	return lines
}
