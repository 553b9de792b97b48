package model

type User struct {
	DTO
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"size:100" json:"name"`
	IsAdmin  bool   `gorm:"not null;default:false" json:"isAdmin"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
}

type VerifyTokenInput struct {
	Token string `json:"token" validate:"required"`
}
