package model

import "github.com/shopspring/decimal"

type MenuItem struct {
	DTO
	Name        string          `gorm:"size:150;not null" json:"name"`
	Slug        string          `gorm:"uniqueIndex;size:180;not null" json:"slug"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
	Category    string          `gorm:"size:80;index" json:"category"`
	Image       string          `json:"image"`
}

type MenuItems []MenuItem

type CreateMenuItemInput struct {
	Name        string `json:"name" form:"name" validate:"required,min=1,max=150"`
	Price       Amount `json:"price" form:"price" validate:"amount"`
	Description string `json:"description" form:"description" validate:"omitempty,max=2000"`
	Category    string `json:"category" form:"category" validate:"required,max=80"`
	Image       string `json:"image" form:"-" validate:"omitempty,max=500"`
}

type UpdateMenuItemInput struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,min=1,max=150"`
	Price       *Amount `json:"price" form:"price" validate:"omitempty,amount"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=2000"`
	Category    *string `json:"category" form:"category" validate:"omitempty,max=80"`
	Image       *string `json:"image" form:"-" validate:"omitempty,max=500"`
}

type MenuFilter struct {
	Pagination
	Category *string `json:"category" query:"category"`
}
