package model

import "time"

type TokenData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type TokenClaim struct {
	UserId  uint   `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type Pagination struct {
	Limit *int `json:"limit" query:"limit" validate:"omitempty,gt=0,lte=200"`
	Page  *int `json:"page" query:"page" validate:"omitempty,gte=1"`
}

type UpdateStatusInput struct {
	Status string `json:"status" form:"status" validate:"required"`
}
